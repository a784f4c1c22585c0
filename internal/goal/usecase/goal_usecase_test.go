package usecase

import (
	"errors"
	"testing"

	"lifegoals/internal/goal/repository"
)

func TestCreateAndListGoals(t *testing.T) {
	uc := NewGoalUsecase(repository.NewMemoryGoalRepository())

	goal, err := uc.CreateGoal("user-1", "Run 5k", "Couch to 5k plan", false)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if goal.ID == "" {
		t.Error("expected goal to be assigned an ID")
	}
	if goal.Completed {
		t.Error("new goal should not be completed")
	}

	goals, err := uc.ListGoals("user-1")
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Run 5k" {
		t.Errorf("unexpected goal list: %+v", goals)
	}
}

func TestCreateGoalRequiresTitle(t *testing.T) {
	uc := NewGoalUsecase(repository.NewMemoryGoalRepository())

	if _, err := uc.CreateGoal("user-1", "   ", "", false); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestListGoalsScopedToUser(t *testing.T) {
	uc := NewGoalUsecase(repository.NewMemoryGoalRepository())

	if _, err := uc.CreateGoal("user-1", "Run 5k", "", false); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := uc.CreateGoal("user-2", "Read 12 books", "", false); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	goals, err := uc.ListGoals("user-1")
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 || goals[0].Title != "Run 5k" {
		t.Errorf("expected only user-1's goal, got %+v", goals)
	}

	empty, err := uc.ListGoals("user-3")
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected an empty, non-nil list, got %#v", empty)
	}
}

func TestUpdateGoalPatchesOnlyProvidedFields(t *testing.T) {
	uc := NewGoalUsecase(repository.NewMemoryGoalRepository())

	goal, err := uc.CreateGoal("user-1", "Run 5k", "Couch to 5k plan", false)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	completed := true
	updated, err := uc.UpdateGoal("user-1", goal.ID, GoalUpdateRequest{Completed: &completed})
	if err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}
	if !updated.Completed {
		t.Error("expected goal to be completed")
	}
	if updated.Title != "Run 5k" || updated.Description != "Couch to 5k plan" {
		t.Errorf("toggle clobbered other fields: %+v", updated)
	}

	title := "Run 10k"
	updated, err = uc.UpdateGoal("user-1", goal.ID, GoalUpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("UpdateGoal: %v", err)
	}
	if updated.Title != "Run 10k" {
		t.Errorf("title = %q, want Run 10k", updated.Title)
	}
	if !updated.Completed {
		t.Error("title update clobbered the completion flag")
	}
}

func TestUpdateGoalOwnership(t *testing.T) {
	uc := NewGoalUsecase(repository.NewMemoryGoalRepository())

	goal, err := uc.CreateGoal("user-1", "Run 5k", "", false)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	completed := true
	if _, err := uc.UpdateGoal("user-2", goal.ID, GoalUpdateRequest{Completed: &completed}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if _, err := uc.UpdateGoal("user-1", "missing", GoalUpdateRequest{Completed: &completed}); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestDeleteGoal(t *testing.T) {
	uc := NewGoalUsecase(repository.NewMemoryGoalRepository())

	goal, err := uc.CreateGoal("user-1", "Run 5k", "", false)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	if err := uc.DeleteGoal("user-2", goal.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
	if err := uc.DeleteGoal("user-1", "missing"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}

	if err := uc.DeleteGoal("user-1", goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	goals, err := uc.ListGoals("user-1")
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 0 {
		t.Errorf("expected no goals after delete, got %+v", goals)
	}
}
