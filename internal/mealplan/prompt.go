/*
Package mealplan implements AI meal-plan generation: prompt construction,
response sanitization, structural validation, and the request orchestrator
that ties them to the model client.
*/
package mealplan

import (
	"fmt"
	"strings"
)

// Goal and budget enum values accepted from the client.
const (
	GoalWeightLoss  = "weight_loss"
	GoalMuscleGain  = "muscle_gain"
	GoalMaintenance = "maintenance"

	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// GoalConfig maps a dietary goal to its calorie target and prompt wording.
type GoalConfig struct {
	Label       string
	Calories    int
	Description string
}

// BudgetConfig maps a budget tier to its prompt guidance.
type BudgetConfig struct {
	Label    string
	Range    string
	Guidance string
}

var goalConfigs = map[string]GoalConfig{
	GoalWeightLoss: {
		Label:       "giảm cân",
		Calories:    1500,
		Description: "Giảm cân an toàn và bền vững",
	},
	GoalMuscleGain: {
		Label:       "tăng cơ",
		Calories:    2500,
		Description: "Tăng cơ bắp hiệu quả",
	},
	GoalMaintenance: {
		Label:       "duy trì cân nặng",
		Calories:    2000,
		Description: "Duy trì sức khỏe và cân nặng",
	},
}

var budgetConfigs = map[string]BudgetConfig{
	BudgetLow: {
		Label:    "tiết kiệm",
		Range:    "Dưới 100,000đ/ngày",
		Guidance: "Ưu tiên nguyên liệu phổ biến, rẻ tiền như: trứng, đậu phụ, rau củ theo mùa, thịt gà, cá basa",
	},
	BudgetMedium: {
		Label:    "trung bình",
		Range:    "100,000đ - 200,000đ/ngày",
		Guidance: "Cân bằng giữa chất lượng và giá cả, có thể dùng thịt bò, cá hồi, hải sản thỉnh thoảng",
	},
	BudgetHigh: {
		Label:    "cao cấp",
		Range:    "Trên 200,000đ/ngày",
		Guidance: "Tự do lựa chọn nguyên liệu chất lượng cao: thịt bò Úc, cá hồi Na Uy, hải sản tươi, rau organic",
	},
}

// GoalFor resolves a goal value, falling back to maintenance for
// anything unrecognized. Input is trusted UI data, so be permissive.
func GoalFor(goal string) GoalConfig {
	if cfg, ok := goalConfigs[goal]; ok {
		return cfg
	}
	return goalConfigs[GoalMaintenance]
}

// BudgetFor resolves a budget tier, falling back to medium.
func BudgetFor(budget string) BudgetConfig {
	if cfg, ok := budgetConfigs[budget]; ok {
		return cfg
	}
	return budgetConfigs[BudgetMedium]
}

// ValidBudget reports whether the value is one of the accepted tiers.
func ValidBudget(budget string) bool {
	_, ok := budgetConfigs[budget]
	return ok
}

// planExampleTemplate is the one concrete example of the exact JSON shape
// the model must return. Interpolated: calorie target, goal label,
// calorie target again, budget label.
const planExampleTemplate = `{
  "days": [
    {
      "day": 1,
      "totalCalories": %d,
      "meals": [
        {
          "type": "Sáng",
          "time": "07:00",
          "foods": [
            {
              "name": "Phở bò",
              "portion": "1 tô",
              "calories": 350,
              "protein": 20,
              "carbs": 50,
              "fat": 8,
              "recipe": {
                "ingredients": [
                  "200g bánh phở",
                  "100g thịt bò",
                  "1 lít nước dùng xương",
                  "Hành, ngò, giá"
                ],
                "instructions": [
                  "Ninh xương bò 2-3 tiếng để có nước dùng trong",
                  "Trụng bánh phở qua nước sôi",
                  "Thái thịt bò mỏng, chần sơ",
                  "Chan nước dùng nóng, thêm hành ngò giá"
                ]
              }
            }
          ],
          "totalCalories": 350,
          "notes": "Ăn nhẹ nhàng, dễ tiêu"
        },
        {
          "type": "Trưa",
          "time": "12:00",
          "foods": [
            {
              "name": "Cơm gạo lứt",
              "portion": "1 chén",
              "calories": 200,
              "protein": 5,
              "carbs": 45,
              "fat": 2,
              "recipe": {
                "ingredients": ["1 chén gạo lứt", "1.5 chén nước", "1 chút muối"],
                "instructions": [
                  "Vo sạch gạo lứt, ngâm 30 phút",
                  "Nấu với nồi cơm điện",
                  "Để nguội 10 phút trước khi ăn"
                ]
              }
            },
            {
              "name": "Cá hồi nướng",
              "portion": "100g",
              "calories": 200,
              "protein": 25,
              "carbs": 0,
              "fat": 12,
              "recipe": {
                "ingredients": ["100g phi lê cá hồi", "Dầu ô liu", "Muối, tiêu, tỏi băm"],
                "instructions": [
                  "Ướp cá với muối, tiêu, tỏi băm 15 phút",
                  "Nướng lò 180°C trong 12-15 phút",
                  "Rưới chanh trước khi ăn"
                ]
              }
            }
          ],
          "totalCalories": 400,
          "notes": "Bữa chính, đầy đủ dinh dưỡng"
        },
        {
          "type": "Tối",
          "time": "18:30",
          "foods": [
            {
              "name": "Canh chua cá",
              "portion": "1 tô",
              "calories": 150,
              "protein": 15,
              "carbs": 12,
              "fat": 5,
              "recipe": {
                "ingredients": ["150g cá basa", "2 quả cà chua", "100g dứa", "Rau ngổ, giá, me chua"],
                "instructions": [
                  "Luộc cá sơ, bỏ xương",
                  "Nấu nước với me chua, cho cà chua và dứa vào",
                  "Thêm cá, nêm nếm vừa ăn",
                  "Cho rau ngổ, giá vào rồi tắt bếp"
                ]
              }
            }
          ],
          "totalCalories": 150,
          "notes": "Bữa tối nhẹ nhàng"
        },
        {
          "type": "Snack",
          "time": "15:00",
          "foods": [
            {
              "name": "Chuối",
              "portion": "1 quả",
              "calories": 100,
              "protein": 1,
              "carbs": 25,
              "fat": 0,
              "recipe": {
                "ingredients": ["1 quả chuối chín"],
                "instructions": ["Chọn chuối chín vừa phải", "Bóc vỏ và ăn trực tiếp"]
              }
            }
          ],
          "totalCalories": 100,
          "notes": "Bổ sung năng lượng"
        }
      ]
    }
  ],
  "summary": {
    "goal": "%s",
    "averageCalories": %d,
    "budget": "%s",
    "tips": [
      "Uống đủ 2-2.5 lít nước mỗi ngày",
      "Ăn chậm, nhai kỹ",
      "Tránh ăn muộn sau 20:00"
    ]
  }
}`

// planPromptTemplate is the instruction wrapper around the example.
// Interpolated, in order: day count, goal label, goal description,
// calorie target, budget label, budget range, budget guidance, notes
// clause, example JSON, calorie target, day count, budget guidance,
// notes fallback.
const planPromptTemplate = `Bạn là chuyên gia dinh dưỡng người Việt Nam. Hãy tạo một kế hoạch ăn uống %d ngày cho mục tiêu %s.

YÊU CẦU:
- Mục tiêu: %s
- Tổng calo mỗi ngày: %d kcal (±50 kcal)
- Ngân sách: %s (%s)
- %s%s
- Sử dụng món ăn Việt Nam phổ biến, dễ nấu
- Cân đối dinh dưỡng: protein, carbs, chất béo lành mạnh
- Mỗi ngày có 4 bữa: Sáng, Trưa, Tối, Snack

ĐỊNH DẠNG JSON (BẮT BUỘC):
Trả về CHÍNH XÁC theo format JSON này, KHÔNG thêm text nào khác:

%s

LƯU Ý QUAN TRỌNG:
1. Chỉ trả về JSON, KHÔNG có markdown, KHÔNG có ` + "```json" + `
2. Đảm bảo tổng calories mỗi ngày ≈ %d kcal
3. Món ăn phải là món Việt thực tế, dễ làm
4. Tạo đủ %d ngày với đa dạng món ăn
5. BẮT BUỘC: Mỗi món ăn PHẢI có trường "recipe" với "ingredients" và "instructions" cụ thể
6. Công thức phải thực tế, dễ làm tại nhà
7. TUÂN THỦ NGÂN SÁCH: %s
8. CHÚ Ý GHI CHÚ NGƯỜI DÙNG: %s

Hãy tạo kế hoạch ngay bây giờ:`

// BuildPrompt renders the full instruction string for the model.
// It is a pure function: identical requests produce byte-identical
// prompts. Unknown goal or budget values fall back to their defaults.
func BuildPrompt(goal, budget, userNotes string, days int) string {
	if days <= 0 {
		days = 7
	}
	goalCfg := GoalFor(goal)
	budgetCfg := BudgetFor(budget)

	notes := strings.TrimSpace(userNotes)
	notesClause := ""
	notesFallback := "Không có yêu cầu đặc biệt"
	if notes != "" {
		notesClause = fmt.Sprintf("\n- Ghi chú từ người dùng: %s", notes)
		notesFallback = notes
	}

	example := fmt.Sprintf(planExampleTemplate,
		goalCfg.Calories, goalCfg.Label, goalCfg.Calories, budgetCfg.Label)

	return fmt.Sprintf(planPromptTemplate,
		days, goalCfg.Label,
		goalCfg.Description,
		goalCfg.Calories,
		budgetCfg.Label, budgetCfg.Range,
		budgetCfg.Guidance, notesClause,
		example,
		goalCfg.Calories,
		days,
		budgetCfg.Guidance,
		notesFallback)
}
