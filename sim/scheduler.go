package sim

import (
	"reflect"
	"sync"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	PassCount  int
	TotalTicks int64
	Passes     []PassStats
}

// PassStats provides execution statistics for a single pass.
type PassStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type passStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type passNode struct {
	pass   Pass
	reads  Resource
	writes Resource
	stats  passStatsInternal
}

// Scheduler owns the ordered execution of passes once per tick. Passes
// declare the resources they read and write; passes that do not conflict
// share a batch and run concurrently, and a barrier between batches
// guarantees later passes observe every write from earlier ones.
//
// Passes never fail in normal operation. A panic inside a pass aborts the
// tick and propagates: this is simulation code, not a service, so there is
// no partial-tick recovery.
type Scheduler struct {
	passes  []*passNode
	batches [][]*passNode
	ticks   int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		passes: make([]*passNode, 0),
	}
}

// Register adds a pass with its resource declarations. Registration order
// is preserved between conflicting passes.
func (s *Scheduler) Register(pass Pass, opts ...PassOption) {
	node := &passNode{
		pass: pass,
		stats: passStatsInternal{
			name:        passName(pass),
			minDuration: time.Duration(1<<63 - 1),
		},
	}
	for _, opt := range opts {
		opt(node)
	}

	s.passes = append(s.passes, node)
	s.batches = nil
}

func passName(pass Pass) string {
	passType := reflect.TypeOf(pass)
	if passType.Kind() == reflect.Ptr {
		passType = passType.Elem()
	}
	return passType.Name()
}

// Compile groups the registered passes into conflict-free batches. Called
// automatically on the first tick after a registration.
func (s *Scheduler) Compile() {
	s.batches = computeBatches(s.passes)
}

func computeBatches(passes []*passNode) [][]*passNode {
	var batches [][]*passNode
	remaining := make([]*passNode, len(passes))
	copy(remaining, passes)

	for len(remaining) > 0 {
		var currentBatch []*passNode
		var nextRemaining []*passNode

		for _, node := range remaining {
			canRun := true
			for _, batched := range currentBatch {
				if conflicts(node, batched) {
					canRun = false
					break
				}
			}

			if canRun {
				currentBatch = append(currentBatch, node)
			} else {
				nextRemaining = append(nextRemaining, node)
			}
		}

		batches = append(batches, currentBatch)
		remaining = nextRemaining
	}

	return batches
}

// Two passes conflict when either writes a resource the other touches.
func conflicts(a, b *passNode) bool {
	return a.writes&b.writes != 0 ||
		a.writes&b.reads != 0 ||
		b.writes&a.reads != 0
}

// Once executes every pass once for the given frame.
func (s *Scheduler) Once(frame *Frame) {
	if s.batches == nil {
		s.Compile()
	}

	for _, batch := range s.batches {
		executeBatch(frame, batch)
	}
	s.ticks++
}

func executeBatch(frame *Frame, batch []*passNode) {
	if len(batch) == 1 {
		runPass(batch[0], frame)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(batch))
	for _, node := range batch {
		go func(node *passNode) {
			defer wg.Done()
			runPass(node, frame)
		}(node)
	}
	wg.Wait()
}

func runPass(node *passNode, frame *Frame) {
	start := time.Now()
	node.pass.Execute(frame)
	duration := time.Since(start)

	stats := &node.stats
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// GetStats returns statistics about pass execution, in registration order.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		PassCount:  len(s.passes),
		TotalTicks: s.ticks,
		Passes:     make([]PassStats, len(s.passes)),
	}

	for i, node := range s.passes {
		internal := &node.stats

		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Passes[i] = PassStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}
