package main

import (
	"time"

	"github.com/nextsteps/nextsteps-cli/dashboard"
	"github.com/nextsteps/nextsteps-cli/internal/utils"
	"github.com/nextsteps/nextsteps-cli/profile"
	"github.com/nextsteps/nextsteps-cli/roadmap"
)

func (a *app) renderProfile(state profile.State) {
	switch state.Phase {
	case profile.PhaseLoading:
		a.printf("Loading profile...\n")
		return
	case profile.PhaseError:
		a.printf("Error: %s\n", state.Message)
		return
	}

	p := state.Profile
	a.printf("\n-- %s --\n", profile.DisplayName(p))
	a.printf("Email: %s\n", p.Email)
	a.printf("Career Goal: %s\n", profile.Goal(p))

	a.printf("Skills: ")
	if tags, ok := profile.Tags(p.Skills); ok {
		a.printTags(tags)
	} else {
		a.printf("%s\n", profile.SkillsPlaceholder)
	}

	a.printf("Interests: ")
	if tags, ok := profile.Tags(p.Interests); ok {
		a.printTags(tags)
	} else {
		a.printf("%s\n", profile.InterestsPlaceholder)
	}

	if footer := profile.LastUpdated(p); footer != "" {
		a.printf("%s\n", footer)
	}
}

func (a *app) printTags(tags []string) {
	for i, tag := range tags {
		if i > 0 {
			a.printf(", ")
		}
		a.printf("[%s]", tag)
	}
	a.printf("\n")
}

func (a *app) renderRoadmap(state roadmap.State) {
	switch state.Phase {
	case roadmap.PhaseIdle:
		a.printf("No roadmap yet. Generate your personalised career roadmap.\n")
		return
	case roadmap.PhaseGenerating:
		a.printf("Generating your roadmap...\n")
		return
	case roadmap.PhaseError:
		a.printf("Error: %s\n", state.Message)
		return
	}

	stage, ok := state.CurrentStage()
	if !ok {
		return
	}
	a.printf("\nTarget: %s\n", state.Roadmap.TargetRole)
	a.printf("Stage %d of %d (%.0f%%)\n", state.Cursor+1, state.TotalStages(), state.Progress()*100)
	a.printf("%d. %s\n", state.StageNumber(), stage.Title)
	if desc := utils.Value(stage.Description); desc != "" {
		a.printf("   %s\n", desc)
	}
	for _, course := range stage.Items {
		a.printf("   - %s", course.Title)
		if course.EstimatedHours != nil {
			a.printf(" (%.0fh)", *course.EstimatedHours)
		}
		a.printf("\n")
		if url := utils.Value(course.URL); url != "" {
			a.printf("     %s\n", url)
		}
	}
}

func (a *app) renderDashboard(state dashboard.State) {
	switch state.Phase {
	case dashboard.PhaseLoading:
		a.printf("Loading dashboard...\n")
		return
	case dashboard.PhaseError:
		a.printf("Error: %s\n", state.Message)
		return
	}

	snapshot := state.Snapshot
	a.printf("\n-- Dashboard --\n")
	if snapshot.Profile != nil {
		a.printf("Name: %s\n", profile.DisplayName(snapshot.Profile))
		a.printf("Career Goal: %s\n", profile.Goal(snapshot.Profile))
	} else {
		a.printf("No profile data available\n")
	}

	stats := snapshot.Stats
	a.printf("Roadmaps: %d  Stages: %d  Completed: %d\n",
		stats.TotalRoadmaps, stats.TotalStages, stats.TotalStagesCompleted)

	if len(snapshot.Roadmaps) == 0 {
		a.printf("You haven't created any roadmaps yet\n")
		return
	}
	for _, summary := range snapshot.Roadmaps {
		a.printf("- [%s] %s (%s)\n", summary.ID, summary.Title, formatDate(summary.CreatedAt))
		if summary.Summary != "" {
			a.printf("  %s\n", summary.Summary)
		}
		if summary.Stats != nil {
			a.printf("  %d / %d courses - %d stages\n",
				summary.Stats.CompletedCourses, summary.Stats.TotalCourses, summary.TotalStages)
		}
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}
