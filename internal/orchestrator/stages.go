package orchestrator

import "startify/internal/domain"

// The six agent stages shown while a job is in flight. Names and order are
// part of the product surface; the progress shown against them is a
// wall-clock estimate, not real pipeline state.
var stageDefs = []domain.AgentStage{
	{Name: "Strategic Analysis", Description: "Analyzing your business concept and market positioning"},
	{Name: "Market Research", Description: "Researching market size, trends, and competition"},
	{Name: "Brand Development", Description: "Creating brand names, slogans, and identity"},
	{Name: "Content Creation", Description: "Writing marketing copy and campaign materials"},
	{Name: "Financial Modeling", Description: "Building projections and funding requirements"},
	{Name: "Investor Matching", Description: "Matching your startup with relevant investors"},
}

// stageSeconds is how long each stage appears to run before the estimator
// advances to the next one.
const stageSeconds = 5

// estimateStageIndex maps elapsed seconds onto a stage index, clamped to the
// last stage.
func estimateStageIndex(elapsedSeconds int) int {
	idx := elapsedSeconds / stageSeconds
	if idx > len(stageDefs)-1 {
		idx = len(stageDefs) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// newStages returns a fresh pending copy of the stage list.
func newStages() []domain.AgentStage {
	stages := make([]domain.AgentStage, len(stageDefs))
	copy(stages, stageDefs)
	for i := range stages {
		stages[i].Status = domain.StagePending
		stages[i].Progress = 0
	}
	return stages
}
