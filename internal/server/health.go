package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

func (s *Server) healthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server đang chạy",
	})
}

// systemHealthHandler reports process and host metrics plus the
// database pool state.
func (s *Server) systemHealthHandler(c echo.Context) error {
	v, _ := mem.VirtualMemory()
	cpuPercent, _ := cpu.Percent(0, false)
	d, _ := disk.Usage("/")
	hInfo, _ := host.Info()

	cpuUsage := "n/a"
	if len(cpuPercent) > 0 {
		cpuUsage = fmt.Sprintf("%.2f%%", cpuPercent[0])
	}

	payload := map[string]any{
		"status": "online",
		"runtime": map[string]any{
			"uptime":     time.Since(s.startTime).String(),
			"start_time": s.startTime.Format(time.RFC3339),
		},
		"cpu": map[string]any{
			"usage_percent": cpuUsage,
		},
		"database": s.db.Health(),
	}

	if hInfo != nil {
		payload["runtime"].(map[string]any)["os"] = hInfo.OS
		payload["runtime"].(map[string]any)["platform"] = hInfo.Platform
		payload["runtime"].(map[string]any)["hostname"] = hInfo.Hostname
		payload["cpu"].(map[string]any)["cores"] = hInfo.Procs
	}
	if v != nil {
		payload["memory"] = map[string]any{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/1024/1024/1024),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		}
	}
	if d != nil {
		payload["disk"] = map[string]any{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/1024/1024/1024),
			"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
		}
	}

	return c.JSON(http.StatusOK, payload)
}
