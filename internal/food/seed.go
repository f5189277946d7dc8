package food

import "nutriplan/internal/database"

func strPtr(s string) *string { return &s }

// seedFoods is the built-in Vietnamese food catalog, ten entries per
// category.
var seedFoods = []database.InsertFoodParams{
	{
		Name:        "Phở bò",
		Category:    "main",
		Calories:    350,
		ProteinG:    20,
		CarbsG:      50,
		FatG:        8,
		Portion:     "1 tô (500ml)",
		Description: strPtr("Món ăn truyền thống Việt Nam"),
		Ingredients: []string{"200g bánh phở", "150g thịt bò", "500ml nước dùng", "Hành tây, gừng", "Gia vị: hồi, quế", "Rau thơm"},
		Recipe:      []string{"Ninh xương bò 3-4 giờ", "Thêm gia vị vào nước dùng", "Trụng bánh phở", "Chần thịt bò", "Xếp bánh phở và thịt", "Chan nước dùng nóng"},
	},
	{
		Name:        "Phở gà",
		Category:    "main",
		Calories:    320,
		ProteinG:    18,
		CarbsG:      48,
		FatG:        6,
		Portion:     "1 tô (500ml)",
		Description: strPtr("Phở với thịt gà"),
		Ingredients: []string{"200g bánh phở", "150g thịt gà", "500ml nước dùng gà", "Hành tây, gừng", "Rau thơm"},
		Recipe:      []string{"Luộc gà với gừng", "Ninh xương gà làm nước dùng", "Trụng bánh phở", "Xé thịt gà", "Xếp bánh phở và gà", "Chan nước dùng"},
	},
	{
		Name:        "Cơm tấm",
		Category:    "main",
		Calories:    550,
		ProteinG:    25,
		CarbsG:      70,
		FatG:        15,
		Portion:     "1 đĩa",
		Description: strPtr("Cơm tấm sườn bì chả"),
		Ingredients: []string{"200g cơm tấm", "100g sườn non", "50g bì", "1 quả trứng", "Nước mắm pha", "Dưa leo"},
		Recipe:      []string{"Ướp sườn với nước mắm, đường", "Nướng sườn trên than", "Luộc bì, thái sợi", "Chiên trứng", "Xếp cơm, sườn, bì, trứng", "Ăn kèm nước mắm"},
	},
	{
		Name:        "Cơm gà",
		Category:    "main",
		Calories:    480,
		ProteinG:    30,
		CarbsG:      60,
		FatG:        12,
		Portion:     "1 đĩa",
		Description: strPtr("Cơm gà xối mỡ"),
		Ingredients: []string{"200g cơm", "150g thịt gà", "Hành tây, tỏi", "Gừng", "Nước mắm"},
		Recipe:      []string{"Luộc gà với gừng", "Xé thịt gà", "Phi hành tỏi", "Xối mỡ gà lên cơm", "Xếp thịt gà", "Ăn kèm nước mắm gừng"},
	},
	{
		Name:        "Bún bò Huế",
		Category:    "main",
		Calories:    420,
		ProteinG:    22,
		CarbsG:      55,
		FatG:        12,
		Portion:     "1 tô",
		Description: strPtr("Món bún cay đặc trưng Huế"),
		Ingredients: []string{"200g bún bò", "100g thịt bò", "50g chả lụa", "Sả, mắm ruốc", "Ớt, tiêu", "Rau sống"},
		Recipe:      []string{"Ninh xương bò với sả", "Thêm mắm ruốc, ớt", "Luộc bún", "Thái thịt bò, chả", "Cho bún vào tô", "Chan nước dùng cay"},
	},
	{
		Name:        "Bún chả",
		Category:    "main",
		Calories:    450,
		ProteinG:    24,
		CarbsG:      52,
		FatG:        16,
		Portion:     "1 phần",
		Description: strPtr("Bún với chả nướng"),
		Ingredients: []string{"200g bún", "150g thịt nạc vai", "Nước mắm, đường", "Tỏi, ớt", "Rau sống"},
		Recipe:      []string{"Ướp thịt với nước mắm, đường", "Nặn thịt thành viên", "Nướng chả trên than", "Pha nước mắm chua ngọt", "Cho chả vào bát nước mắm", "Ăn kèm bún và rau"},
	},
	{
		Name:        "Bánh mì thịt",
		Category:    "main",
		Calories:    380,
		ProteinG:    18,
		CarbsG:      42,
		FatG:        14,
		Portion:     "1 ổ",
		Description: strPtr("Bánh mì kẹp thịt"),
		Ingredients: []string{"1 ổ bánh mì", "100g thịt nguội", "Pate", "Dưa leo, cà chua", "Rau thơm", "Tương ớt"},
		Recipe:      []string{"Nướng bánh mì giòn", "Phết pate", "Kẹp thịt nguội", "Thêm rau, dưa leo", "Rưới tương ớt"},
	},
	{
		Name:        "Cơm chiên",
		Category:    "main",
		Calories:    520,
		ProteinG:    15,
		CarbsG:      68,
		FatG:        18,
		Portion:     "1 đĩa",
		Description: strPtr("Cơm chiên trứng"),
		Ingredients: []string{"200g cơm nguội", "2 quả trứng", "Hành tây, tỏi", "Xì dầu", "Rau củ"},
		Recipe:      []string{"Đánh trứng", "Phi hành tỏi thơm", "Cho cơm vào xào", "Thêm trứng", "Nêm xì dầu", "Xào đều"},
	},
	{
		Name:        "Mì xào",
		Category:    "main",
		Calories:    480,
		ProteinG:    16,
		CarbsG:      62,
		FatG:        16,
		Portion:     "1 đĩa",
		Description: strPtr("Mì xào thập cẩm"),
		Ingredients: []string{"200g mì", "100g thịt/tôm", "Rau củ", "Hành tây, tỏi", "Xì dầu"},
		Recipe:      []string{"Luộc mì", "Phi hành tỏi", "Xào thịt/tôm", "Cho mì vào xào", "Thêm rau củ", "Nêm xì dầu"},
	},
	{
		Name:        "Hủ tiếu",
		Category:    "main",
		Calories:    340,
		ProteinG:    16,
		CarbsG:      50,
		FatG:        8,
		Portion:     "1 tô",
		Description: strPtr("Hủ tiếu Nam Vang"),
		Ingredients: []string{"200g hủ tiếu", "100g thịt/tôm", "Nước dùng xương", "Rau thơm", "Tỏi phi"},
		Recipe:      []string{"Ninh xương làm nước dùng", "Trụng hủ tiếu", "Luộc thịt/tôm", "Cho hủ tiếu vào tô", "Chan nước dùng", "Thêm rau thơm"},
	},
	{
		Name:        "Rau xào",
		Category:    "side",
		Calories:    80,
		ProteinG:    3,
		CarbsG:      10,
		FatG:        3,
		Portion:     "1 đĩa",
		Description: strPtr("Rau củ xào"),
		Ingredients: []string{"200g rau củ", "Tỏi", "Dầu ăn", "Muối"},
		Recipe:      []string{"Rửa rau sạch", "Phi tỏi thơm", "Cho rau vào xào nhanh", "Nêm muối vừa ăn"},
	},
	{
		Name:        "Canh chua",
		Category:    "side",
		Calories:    120,
		ProteinG:    12,
		CarbsG:      8,
		FatG:        4,
		Portion:     "1 tô",
		Description: strPtr("Canh chua cá"),
		Ingredients: []string{"150g cá", "Cà chua, dứa", "Rau thơm", "Me, đường", "Nước mắm"},
		Recipe:      []string{"Nấu nước sôi", "Cho cà chua, dứa vào", "Thêm cá", "Nêm me, đường, nước mắm", "Thêm rau thơm"},
	},
	{
		Name:        "Gỏi cuốn",
		Category:    "side",
		Calories:    150,
		ProteinG:    8,
		CarbsG:      20,
		FatG:        4,
		Portion:     "2 cuốn",
		Description: strPtr("Gỏi cuốn tôm thịt"),
		Ingredients: []string{"Bánh tráng", "Tôm, thịt luộc", "Bún tươi", "Rau sống", "Nước chấm"},
		Recipe:      []string{"Luộc tôm, thịt", "Trụng bánh tráng", "Xếp rau, bún, tôm, thịt", "Cuốn chặt", "Ăn kèm nước chấm"},
	},
	{
		Name:        "Nem rán",
		Category:    "side",
		Calories:    200,
		ProteinG:    10,
		CarbsG:      18,
		FatG:        10,
		Portion:     "3 cái",
		Description: strPtr("Chả giò"),
		Ingredients: []string{"Bánh đa nem", "Thịt băm", "Miến", "Rau củ", "Trứng"},
		Recipe:      []string{"Trộn nhân thịt, miến, rau", "Gói nem", "Chiên vàng giòn", "Ăn kèm nước mắm"},
	},
	{
		Name:        "Đậu hũ chiên",
		Category:    "side",
		Calories:    180,
		ProteinG:    12,
		CarbsG:      8,
		FatG:        12,
		Portion:     "100g",
		Description: strPtr("Đậu phụ chiên giòn"),
		Ingredients: []string{"200g đậu hũ", "Dầu ăn", "Muối", "Nước mắm"},
		Recipe:      []string{"Cắt đậu hũ miếng vừa", "Chiên vàng giòn", "Ăn kèm nước mắm"},
	},
	{
		Name:        "Canh rau",
		Category:    "side",
		Calories:    60,
		ProteinG:    2,
		CarbsG:      8,
		FatG:        2,
		Portion:     "1 tô",
		Description: strPtr("Canh rau củ"),
		Ingredients: []string{"Rau củ", "Nước", "Muối", "Hành"},
		Recipe:      []string{"Nấu nước sôi", "Cho rau củ vào", "Nêm muối", "Thêm hành"},
	},
	{
		Name:        "Salad",
		Category:    "side",
		Calories:    100,
		ProteinG:    4,
		CarbsG:      12,
		FatG:        4,
		Portion:     "1 đĩa",
		Description: strPtr("Salad rau trộn"),
		Ingredients: []string{"Rau xà lách", "Cà chua", "Dưa leo", "Sốt salad"},
		Recipe:      []string{"Rửa rau sạch", "Thái rau", "Trộn đều", "Rưới sốt"},
	},
	{
		Name:        "Trứng luộc",
		Category:    "side",
		Calories:    140,
		ProteinG:    12,
		CarbsG:      2,
		FatG:        10,
		Portion:     "2 quả",
		Description: strPtr("Trứng gà luộc"),
		Ingredients: []string{"2 quả trứng gà", "Nước", "Muối"},
		Recipe:      []string{"Đun nước sôi", "Cho trứng vào", "Luộc 8-10 phút", "Ngâm nước lạnh"},
	},
	{
		Name:        "Thịt kho",
		Category:    "side",
		Calories:    250,
		ProteinG:    20,
		CarbsG:      8,
		FatG:        16,
		Portion:     "100g",
		Description: strPtr("Thịt kho tàu"),
		Ingredients: []string{"200g thịt ba chỉ", "Trứng", "Nước dừa", "Nước mắm, đường"},
		Recipe:      []string{"Luộc thịt sơ", "Kho với nước dừa", "Thêm trứng", "Nêm nước mắm, đường", "Kho đến thịt mềm"},
	},
	{
		Name:        "Cá kho",
		Category:    "side",
		Calories:    220,
		ProteinG:    22,
		CarbsG:      6,
		FatG:        12,
		Portion:     "100g",
		Description: strPtr("Cá kho tộ"),
		Ingredients: []string{"200g cá", "Nước mắm, đường", "Tỏi, ớt", "Nước dừa"},
		Recipe:      []string{"Ướp cá với gia vị", "Kho với nước dừa", "Nêm vừa ăn", "Kho đến cá thấm gia vị"},
	},
	{
		Name:        "Bánh bao",
		Category:    "snack",
		Calories:    220,
		ProteinG:    8,
		CarbsG:      32,
		FatG:        6,
		Portion:     "1 cái",
		Description: strPtr("Bánh bao nhân thịt"),
		Ingredients: []string{"Bột mì", "Thịt băm", "Trứng", "Men", "Đường"},
		Recipe:      []string{"Nhào bột", "Ủ bột nở", "Làm nhân thịt", "Gói bánh", "Hấp chín"},
	},
	{
		Name:        "Chè",
		Category:    "snack",
		Calories:    180,
		ProteinG:    4,
		CarbsG:      35,
		FatG:        3,
		Portion:     "1 chén",
		Description: strPtr("Chè đậu xanh"),
		Ingredients: []string{"Đậu xanh", "Đường", "Nước cốt dừa"},
		Recipe:      []string{"Nấu đậu xanh mềm", "Thêm đường", "Cho nước cốt dừa", "Khuấy đều"},
	},
	{
		Name:        "Sữa chua",
		Category:    "snack",
		Calories:    120,
		ProteinG:    6,
		CarbsG:      18,
		FatG:        3,
		Portion:     "1 hộp",
		Description: strPtr("Sữa chua không đường"),
		Ingredients: []string{"Sữa tươi", "Men sữa chua"},
		Recipe:      []string{"Đun sữa ấm", "Cho men vào", "Ủ 6-8 giờ", "Bảo quản lạnh"},
	},
	{
		Name:        "Hạnh nhân",
		Category:    "snack",
		Calories:    160,
		ProteinG:    6,
		CarbsG:      6,
		FatG:        14,
		Portion:     "30g",
		Description: strPtr("Hạnh nhân rang"),
		Ingredients: []string{"Hạnh nhân sống", "Muối"},
		Recipe:      []string{"Rang hạnh nhân", "Rắc muối nhẹ"},
	},
	{
		Name:        "Bánh quy",
		Category:    "snack",
		Calories:    140,
		ProteinG:    2,
		CarbsG:      20,
		FatG:        6,
		Portion:     "4 cái",
		Description: strPtr("Bánh quy giòn"),
		Ingredients: []string{"Bột mì", "Bơ", "Đường", "Trứng"},
		Recipe:      []string{"Trộn bột, bơ, đường", "Cán mỏng", "Cắt hình", "Nướng vàng"},
	},
	{
		Name:        "Khoai lang luộc",
		Category:    "snack",
		Calories:    110,
		ProteinG:    2,
		CarbsG:      26,
		FatG:        0,
		Portion:     "100g",
		Description: strPtr("Khoai lang hấp"),
		Ingredients: []string{"Khoai lang", "Nước"},
		Recipe:      []string{"Rửa khoai sạch", "Hấp chín", "Bóc vỏ ăn"},
	},
	{
		Name:        "Ngô luộc",
		Category:    "snack",
		Calories:    130,
		ProteinG:    4,
		CarbsG:      28,
		FatG:        2,
		Portion:     "1 bắp",
		Description: strPtr("Ngô bao tử luộc"),
		Ingredients: []string{"Ngô tươi", "Nước", "Muối"},
		Recipe:      []string{"Bóc lá ngô", "Luộc trong nước muối", "Luộc 15-20 phút"},
	},
	{
		Name:        "Bánh flan",
		Category:    "snack",
		Calories:    150,
		ProteinG:    5,
		CarbsG:      22,
		FatG:        5,
		Portion:     "1 cái",
		Description: strPtr("Bánh flan caramel"),
		Ingredients: []string{"Trứng", "Sữa", "Đường", "Vani"},
		Recipe:      []string{"Làm caramel", "Trộn trứng, sữa, đường", "Đổ vào khuôn", "Hấp chín"},
	},
	{
		Name:        "Bánh mì nướng",
		Category:    "snack",
		Calories:    180,
		ProteinG:    6,
		CarbsG:      30,
		FatG:        4,
		Portion:     "2 lát",
		Description: strPtr("Bánh mì nướng bơ"),
		Ingredients: []string{"Bánh mì", "Bơ"},
		Recipe:      []string{"Cắt bánh mì lát", "Phết bơ", "Nướng vàng"},
	},
	{
		Name:        "Sữa đậu nành",
		Category:    "snack",
		Calories:    100,
		ProteinG:    7,
		CarbsG:      12,
		FatG:        3,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Sữa đậu nành không đường"),
		Ingredients: []string{"Đậu nành", "Nước"},
		Recipe:      []string{"Ngâm đậu nành", "Xay nhuyễn", "Lọc lấy nước", "Đun sôi"},
	},
	{
		Name:        "Chuối",
		Category:    "fruit",
		Calories:    105,
		ProteinG:    1,
		CarbsG:      27,
		FatG:        0,
		Portion:     "1 quả",
		Description: strPtr("Chuối tiêu"),
		Ingredients: []string{"Chuối tươi"},
		Recipe:      []string{"Bóc vỏ", "Ăn trực tiếp"},
	},
	{
		Name:        "Táo",
		Category:    "fruit",
		Calories:    95,
		ProteinG:    0,
		CarbsG:      25,
		FatG:        0,
		Portion:     "1 quả",
		Description: strPtr("Táo ta"),
		Ingredients: []string{"Táo tươi"},
		Recipe:      []string{"Rửa sạch", "Ăn cả vỏ hoặc gọt vỏ"},
	},
	{
		Name:        "Cam",
		Category:    "fruit",
		Calories:    62,
		ProteinG:    1,
		CarbsG:      15,
		FatG:        0,
		Portion:     "1 quả",
		Description: strPtr("Cam sành"),
		Ingredients: []string{"Cam tươi"},
		Recipe:      []string{"Bóc vỏ", "Ăn múi"},
	},
	{
		Name:        "Xoài",
		Category:    "fruit",
		Calories:    135,
		ProteinG:    1,
		CarbsG:      35,
		FatG:        0,
		Portion:     "1 quả",
		Description: strPtr("Xoài cát"),
		Ingredients: []string{"Xoài chín"},
		Recipe:      []string{"Gọt vỏ", "Thái múi"},
	},
	{
		Name:        "Đu đủ",
		Category:    "fruit",
		Calories:    60,
		ProteinG:    1,
		CarbsG:      15,
		FatG:        0,
		Portion:     "1 chén",
		Description: strPtr("Đu đủ chín"),
		Ingredients: []string{"Đu đủ chín"},
		Recipe:      []string{"Gọt vỏ", "Bỏ hạt", "Thái miếng"},
	},
	{
		Name:        "Nho",
		Category:    "fruit",
		Calories:    104,
		ProteinG:    1,
		CarbsG:      27,
		FatG:        0,
		Portion:     "1 chùm (150g)",
		Description: strPtr("Nho xanh"),
		Ingredients: []string{"Nho tươi"},
		Recipe:      []string{"Rửa sạch", "Ăn từng quả"},
	},
	{
		Name:        "Dưa hấu",
		Category:    "fruit",
		Calories:    46,
		ProteinG:    1,
		CarbsG:      12,
		FatG:        0,
		Portion:     "1 lát (150g)",
		Description: strPtr("Dưa hấu đỏ"),
		Ingredients: []string{"Dưa hấu tươi"},
		Recipe:      []string{"Cắt lát", "Bỏ hạt", "Ăn thịt dưa"},
	},
	{
		Name:        "Dứa",
		Category:    "fruit",
		Calories:    82,
		ProteinG:    1,
		CarbsG:      22,
		FatG:        0,
		Portion:     "1 lát (165g)",
		Description: strPtr("Dứa tươi"),
		Ingredients: []string{"Dứa tươi"},
		Recipe:      []string{"Gọt vỏ", "Bỏ mắt", "Thái lát"},
	},
	{
		Name:        "Bưởi",
		Category:    "fruit",
		Calories:    76,
		ProteinG:    2,
		CarbsG:      19,
		FatG:        0,
		Portion:     "1/2 quả",
		Description: strPtr("Bưởi da xanh"),
		Ingredients: []string{"Bưởi tươi"},
		Recipe:      []string{"Bóc vỏ", "Tách múi", "Bóc màng"},
	},
	{
		Name:        "Dâu tây",
		Category:    "fruit",
		Calories:    49,
		ProteinG:    1,
		CarbsG:      12,
		FatG:        0,
		Portion:     "1 chén (150g)",
		Description: strPtr("Dâu tây tươi"),
		Ingredients: []string{"Dâu tây tươi"},
		Recipe:      []string{"Rửa sạch", "Bỏ cuống", "Ăn trực tiếp"},
	},
	{
		Name:        "Nước ép cam",
		Category:    "drink",
		Calories:    112,
		ProteinG:    2,
		CarbsG:      26,
		FatG:        0,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Nước cam vắt"),
		Ingredients: []string{"3 quả cam", "Đường (tùy chọn)"},
		Recipe:      []string{"Vắt cam lấy nước", "Lọc bỏ xác", "Thêm đường nếu cần"},
	},
	{
		Name:        "Trà sữa",
		Category:    "drink",
		Calories:    280,
		ProteinG:    4,
		CarbsG:      48,
		FatG:        8,
		Portion:     "1 ly (500ml)",
		Description: strPtr("Trà sữa trân châu"),
		Ingredients: []string{"Trà đen", "Sữa", "Đường", "Trân châu"},
		Recipe:      []string{"Pha trà đen", "Thêm sữa, đường", "Cho trân châu", "Khuấy đều"},
	},
	{
		Name:        "Cà phê sữa",
		Category:    "drink",
		Calories:    150,
		ProteinG:    3,
		CarbsG:      24,
		FatG:        4,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Cà phê sữa đá"),
		Ingredients: []string{"Cà phê phin", "Sữa đặc", "Đá"},
		Recipe:      []string{"Pha cà phê phin", "Cho sữa đặc vào ly", "Đổ cà phê", "Thêm đá"},
	},
	{
		Name:        "Nước dừa",
		Category:    "drink",
		Calories:    46,
		ProteinG:    2,
		CarbsG:      9,
		FatG:        0,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Nước dừa tươi"),
		Ingredients: []string{"1 trái dừa tươi"},
		Recipe:      []string{"Chọn dừa tươi", "Chặt lấy nước", "Uống trực tiếp"},
	},
	{
		Name:        "Sinh tố bơ",
		Category:    "drink",
		Calories:    220,
		ProteinG:    4,
		CarbsG:      28,
		FatG:        12,
		Portion:     "1 ly (300ml)",
		Description: strPtr("Sinh tố bơ sữa"),
		Ingredients: []string{"1 quả bơ", "Sữa tươi", "Đường", "Đá"},
		Recipe:      []string{"Bóc vỏ bơ", "Cho vào máy xay", "Thêm sữa, đường, đá", "Xay nhuyễn"},
	},
	{
		Name:        "Nước chanh",
		Category:    "drink",
		Calories:    60,
		ProteinG:    0,
		CarbsG:      16,
		FatG:        0,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Nước chanh đường"),
		Ingredients: []string{"2 quả chanh", "Đường", "Nước"},
		Recipe:      []string{"Vắt chanh lấy nước", "Pha với nước", "Thêm đường", "Khuấy đều"},
	},
	{
		Name:        "Trà xanh",
		Category:    "drink",
		Calories:    2,
		ProteinG:    0,
		CarbsG:      0,
		FatG:        0,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Trà xanh không đường"),
		Ingredients: []string{"Lá trà xanh", "Nước nóng"},
		Recipe:      []string{"Đun nước sôi", "Ủ trà 3-5 phút", "Lọc lấy nước"},
	},
	{
		Name:        "Nước ép dưa hấu",
		Category:    "drink",
		Calories:    72,
		ProteinG:    1,
		CarbsG:      18,
		FatG:        0,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Nước dưa hấu vắt"),
		Ingredients: []string{"Dưa hấu tươi", "Đường (tùy chọn)"},
		Recipe:      []string{"Cắt dưa hấu", "Xay nhuyễn", "Lọc lấy nước", "Thêm đường nếu cần"},
	},
	{
		Name:        "Sữa tươi",
		Category:    "drink",
		Calories:    150,
		ProteinG:    8,
		CarbsG:      12,
		FatG:        8,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Sữa tươi nguyên kem"),
		Ingredients: []string{"Sữa tươi"},
		Recipe:      []string{"Rót sữa vào ly", "Uống trực tiếp hoặc làm lạnh"},
	},
	{
		Name:        "Nước mía",
		Category:    "drink",
		Calories:    180,
		ProteinG:    0,
		CarbsG:      45,
		FatG:        0,
		Portion:     "1 ly (250ml)",
		Description: strPtr("Nước mía vắt"),
		Ingredients: []string{"Mía tươi"},
		Recipe:      []string{"Gọt vỏ mía", "Ép lấy nước", "Lọc bỏ xác", "Thêm đá"},
	},
}
