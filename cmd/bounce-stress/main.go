package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/bounce/sim"
)

const (
	arenaWidth    = 1920
	arenaHeight   = 1080
	velocityRange = 50.0
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	bodyCount := flag.Int("bodies", 100000, "The number of bodies to spawn.")
	workers := flag.Int("workers", 0, "Worker pool size (0 = GOMAXPROCS).")
	seed := flag.Uint64("seed", 1, "Spawn seed.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting bounce stress test...")

	// 1. Setup the simulation
	arena, err := sim.NewArena(arenaWidth, arenaHeight)
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	simulation, err := sim.New(arena, sim.WithSeed(*seed), sim.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("Failed to build simulation: %v", err)
	}
	defer simulation.Close()

	// 2. Populate the store
	log.Printf("Spawning %d bodies...\n", *bodyCount)
	if err := simulation.SpawnBodies(*bodyCount, velocityRange, 0); err != nil {
		log.Fatalf("Failed to spawn bodies: %v", err)
	}
	log.Println("Spawn complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Bodies:         *bodyCount,
		Workers:        *workers,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	if report.Workers == 0 {
		report.Workers = runtime.GOMAXPROCS(0)
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			tickStart := time.Now()
			simulation.Tick(float32(deltaTime.Seconds()))
			tickDuration := time.Since(tickStart)

			report.TickTime.Samples = append(report.TickTime.Samples, tickDuration)
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.PassStats = simulation.Stats().Passes
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate report to console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
