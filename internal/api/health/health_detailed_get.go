// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/mem"
)

// detailedHealthResponse is the authenticated health payload.
type detailedHealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	Version    string                     `json:"version"`
	Uptime     string                     `json:"uptime"`
	Memory     *memoryStats               `json:"memory,omitempty"`
}

// memoryStats reports host memory usage.
type memoryStats struct {
	TotalBytes  uint64  `json:"totalBytes"`
	UsedBytes   uint64  `json:"usedBytes"`
	UsedPercent float64 `json:"usedPercent"`
}

// HealthDetailedGet returns per-component health status (authenticated).
func (h *Health) HealthDetailedGet(
	c echo.Context,
) error {
	dbErr := h.Checker.CheckHealth(c.Request().Context())

	dbComponent := ComponentHealth{Status: "ok"}
	if dbErr != nil {
		dbComponent = ComponentHealth{Status: "error", Error: dbErr.Error()}
	}

	resp := detailedHealthResponse{
		Status: "ok",
		Components: map[string]ComponentHealth{
			"database": dbComponent,
		},
		Version: h.Version,
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		resp.Memory = &memoryStats{
			TotalBytes:  vm.Total,
			UsedBytes:   vm.Used,
			UsedPercent: vm.UsedPercent,
		}
	}

	if dbErr != nil {
		resp.Status = "degraded"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}
