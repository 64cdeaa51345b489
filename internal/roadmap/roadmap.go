// Package roadmap spreads learning tasks for missing skills across a number of months.
package roadmap

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Month bounds applied to every request
const (
	MinMonths     = 1
	MaxMonths     = 24
	DefaultMonths = 3
)

// coachingTasks are seeded before any skill-specific work.
var coachingTasks = []string{
	"Polish resume bullets \u2014 highlight measurable impact.",
	"Build a small project demonstrating the required skill.",
	"Practice interview questions (STAR method).",
}

// placement decides which month the i-th task of a stage lands in.
type placement func(index, months int) int

// sequential puts task i in month i+1, folding overflow into the last month.
func sequential(index, months int) int {
	return min(months, 1+index)
}

// roundRobin cycles tasks through every month in turn.
func roundRobin(index, months int) int {
	return 1 + index%months
}

// stage is one rule of the planner: a task source and how its tasks are placed.
type stage struct {
	name  string
	tasks func(missing []string) []string
	place placement
}

// stages run in order; earlier stages' tasks come first within a month.
var stages = []stage{
	{
		name:  "coaching",
		tasks: func([]string) []string { return coachingTasks },
		place: sequential,
	},
	{
		name:  "skills",
		tasks: skillTasks,
		place: roundRobin,
	},
}

func skillTasks(missing []string) []string {
	tasks := make([]string, len(missing))
	for i, skill := range missing {
		tasks[i] = SkillTask(skill)
	}
	return tasks
}

// SkillTask is the task text for learning one missing skill.
func SkillTask(skill string) string {
	return fmt.Sprintf("Learn & build project for: %s", skill)
}

// ClampMonths limits months to [MinMonths, MaxMonths].
func ClampMonths(months int) int {
	return max(MinMonths, min(MaxMonths, months))
}

// Build plans the missing skills, in the order given, across months (clamped).
// Every month from 1 to the clamped count is present in the result.
func Build(missing []string, months int) types.Roadmap {
	months = ClampMonths(months)

	plan := make(types.Roadmap, months)
	for m := 1; m <= months; m++ {
		plan[m] = []string{}
	}

	for _, s := range stages {
		for i, task := range s.tasks(missing) {
			month := s.place(i, months)
			plan[month] = append(plan[month], task)
		}
	}

	return plan
}

// TaskCount returns the total number of tasks in a roadmap.
func TaskCount(plan types.Roadmap) int {
	total := 0
	for _, tasks := range plan {
		total += len(tasks)
	}
	return total
}
