package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/bounce/sim"
)

const latencyHistorySize = 100

// PerformanceChart keeps a rolling window of per-pass latencies for the
// debug overlay.
type PerformanceChart struct {
	FPSSamples  []float32
	PassLatency map[string][]float32
	Offset      int
}

func NewPerformanceChart() *PerformanceChart {
	return &PerformanceChart{
		FPSSamples:  make([]float32, latencyHistorySize),
		PassLatency: make(map[string][]float32),
	}
}

// Record samples the latest tick's stats into the rolling windows.
func (c *PerformanceChart) Record(s *sim.Simulation) {
	c.FPSSamples[c.Offset] = float32(ebiten.ActualFPS())

	for _, pass := range s.Stats().Passes {
		samples, ok := c.PassLatency[pass.Name]
		if !ok {
			samples = make([]float32, latencyHistorySize)
			c.PassLatency[pass.Name] = samples
		}
		samples[c.Offset] = float32(pass.LastDuration.Seconds() * 1000)
	}

	c.Offset = (c.Offset + 1) % latencyHistorySize
}

// Render draws the overlay windows for the current ImGui frame.
func (c *PerformanceChart) Render(s *sim.Simulation) {
	stats := s.Stats()
	camera := s.Camera()
	arena := s.Arena()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 260), imgui.CondOnce)

	if imgui.BeginV("Simulation", nil, 0) {
		imgui.Text(fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
		imgui.Text(fmt.Sprintf("Bodies: %d", s.Store().Len()))
		imgui.Text(fmt.Sprintf("Ticks: %d", stats.TotalTicks))
		imgui.Separator()

		for _, pass := range stats.Passes {
			imgui.Text(fmt.Sprintf("%s: %.3f ms (avg %.3f)",
				pass.Name,
				pass.LastDuration.Seconds()*1000,
				pass.AvgDuration.Seconds()*1000))
		}
		imgui.Separator()

		imgui.Text(fmt.Sprintf("Arena: %.0fx%.0f", arena.Width, arena.Height))
		imgui.Text(fmt.Sprintf("Camera: [%.0f, %.0f] x [%.0f, %.0f] gen %d",
			camera.Left, camera.Right, camera.Top, camera.Bottom, camera.Generation))

		imgui.End()
	}

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)

	if imgui.BeginV("Pass Latency", nil, 0) {
		if implot.BeginPlotV("Latency Over Time", imgui.NewVec2(-1, -1), 0) {
			implot.SetupAxesV("Frame", "Time (ms)", 0, implot.AxisFlagsAutoFit)

			for _, pass := range stats.Passes {
				samples := c.PassLatency[pass.Name]
				if len(samples) == 0 {
					continue
				}
				implot.PlotLineFloatPtrInt(pass.Name, &samples[0], int32(len(samples)))
			}

			implot.EndPlot()
		}
		imgui.End()
	}
}
