// Package review 审核服务单元测试
package review

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ashwinyue/docqa/internal/errs"
	"github.com/ashwinyue/docqa/internal/model"
	"github.com/ashwinyue/docqa/internal/repository"
	"github.com/ashwinyue/docqa/internal/testutil"
)

// ========== NextStatus 测试 ==========

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		validated bool
		score     float64
		want      string
	}{
		{name: "validated high score", current: model.StatusPending, validated: true, score: 0.85, want: model.StatusReady},
		{name: "validated at ready threshold", current: model.StatusPending, validated: true, score: 0.7, want: model.StatusReady},
		{name: "validated low score", current: model.StatusPending, validated: true, score: 0.1, want: model.StatusRejected},
		{name: "validated just below reject threshold", current: model.StatusPending, validated: true, score: 0.29, want: model.StatusRejected},
		{name: "validated mid score keeps status", current: model.StatusPending, validated: true, score: 0.5, want: model.StatusPending},
		{name: "validated at reject threshold keeps status", current: model.StatusPending, validated: true, score: 0.3, want: model.StatusPending},
		{name: "not validated keeps status", current: model.StatusPending, validated: false, score: 0.95, want: model.StatusPending},
		{name: "ready item can be rejected again", current: model.StatusReady, validated: true, score: 0.1, want: model.StatusRejected},
		{name: "rejected item can be promoted again", current: model.StatusRejected, validated: true, score: 0.9, want: model.StatusReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextStatus(tt.current, tt.validated, tt.score); got != tt.want {
				t.Errorf("NextStatus(%s, %v, %v) = %s, want %s",
					tt.current, tt.validated, tt.score, got, tt.want)
			}
		})
	}
}

// ========== Annotate 测试 ==========

func seedItem(t *testing.T, repo *repository.Repositories, status string) *model.QAItem {
	t.Helper()

	chunk := &model.Chunk{
		ID:        uuid.New().String(),
		ChunkID:   uuid.New().String(),
		SourceURL: "https://example.org/doc",
		Content:   "chunk body",
	}
	if err := repo.Chunk.Create(chunk); err != nil {
		t.Fatalf("failed to seed chunk: %v", err)
	}

	item := &model.QAItem{
		ID:       uuid.New().String(),
		ChunkRef: chunk.ID,
		Question: "What is a metagenome?",
		Answer:   "The collective genomes of an environmental sample.",
		Status:   status,
	}
	if err := repo.QA.Create(item); err != nil {
		t.Fatalf("failed to seed qa item: %v", err)
	}
	return item
}

func seedAnnotator(t *testing.T, repo *repository.Repositories) *model.User {
	t.Helper()

	user := &model.User{
		ID:           uuid.New().String(),
		Email:        uuid.New().String() + "@example.org",
		FullName:     "Test Annotator",
		Role:         model.RoleAnnotator,
		PasswordHash: "x",
	}
	if err := repo.Auth.CreateUser(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestAnnotate_StatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		validated  bool
		wantStatus string
	}{
		{name: "promote to ready", score: 0.9, validated: true, wantStatus: model.StatusReady},
		{name: "demote to rejected", score: 0.1, validated: true, wantStatus: model.StatusRejected},
		{name: "mid score stays pending", score: 0.5, validated: true, wantStatus: model.StatusPending},
		{name: "not validated stays pending", score: 0.9, validated: false, wantStatus: model.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := repository.NewRepositories(testutil.NewTestDB(t))
			svc := NewService(repo)

			item := seedItem(t, repo, model.StatusPending)
			annotator := seedAnnotator(t, repo)

			ann, err := svc.Annotate(context.Background(), &AnnotateRequest{
				QAItemID:       item.ID,
				EditedQuestion: "edited question",
				EditedAnswer:   "edited answer",
				Score:          tt.score,
				Comment:        "looks fine",
				Validated:      tt.validated,
			}, annotator.ID)
			if err != nil {
				t.Fatalf("Annotate() error = %v", err)
			}
			if ann.QAItemRef != item.ID || ann.AnnotatedBy != annotator.ID {
				t.Errorf("annotation refs = %s/%s, want %s/%s",
					ann.QAItemRef, ann.AnnotatedBy, item.ID, annotator.ID)
			}

			reloaded, err := repo.QA.GetByID(item.ID)
			if err != nil {
				t.Fatalf("failed to reload item: %v", err)
			}
			if reloaded.Status != tt.wantStatus {
				t.Errorf("status after annotate = %s, want %s", reloaded.Status, tt.wantStatus)
			}

			anns, err := repo.QA.ListAnnotations(item.ID)
			if err != nil {
				t.Fatalf("failed to list annotations: %v", err)
			}
			if len(anns) != 1 {
				t.Errorf("annotations = %d, want 1", len(anns))
			}
		})
	}
}

func TestAnnotate_AppendsHistory(t *testing.T) {
	repo := repository.NewRepositories(testutil.NewTestDB(t))
	svc := NewService(repo)

	item := seedItem(t, repo, model.StatusPending)
	annotator := seedAnnotator(t, repo)

	// 同一条目两次标注，历史追加不覆盖
	for _, score := range []float64{0.5, 0.9} {
		if _, err := svc.Annotate(context.Background(), &AnnotateRequest{
			QAItemID:  item.ID,
			Score:     score,
			Validated: true,
		}, annotator.ID); err != nil {
			t.Fatalf("Annotate() error = %v", err)
		}
	}

	anns, err := repo.QA.ListAnnotations(item.ID)
	if err != nil {
		t.Fatalf("failed to list annotations: %v", err)
	}
	if len(anns) != 2 {
		t.Errorf("annotations = %d, want 2", len(anns))
	}

	reloaded, _ := repo.QA.GetByID(item.ID)
	if reloaded.Status != model.StatusReady {
		t.Errorf("status = %s, want ready", reloaded.Status)
	}
}

func TestAnnotate_NotFound(t *testing.T) {
	repo := repository.NewRepositories(testutil.NewTestDB(t))
	svc := NewService(repo)

	_, err := svc.Annotate(context.Background(), &AnnotateRequest{
		QAItemID:  "no-such-item",
		Score:     0.9,
		Validated: true,
	}, "annotator-1")
	if err == nil {
		t.Fatal("Annotate() expected error, got nil")
	}
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Annotate() error = %v, want ErrNotFound kind", err)
	}
}

// ========== 列表与统计测试 ==========

func TestListPendingAndStats(t *testing.T) {
	repo := repository.NewRepositories(testutil.NewTestDB(t))
	svc := NewService(repo)

	pending := seedItem(t, repo, model.StatusPending)
	seedItem(t, repo, model.StatusReady)
	seedItem(t, repo, model.StatusRejected)
	annotator := seedAnnotator(t, repo)

	if _, err := svc.Annotate(context.Background(), &AnnotateRequest{
		QAItemID:  pending.ID,
		Score:     0.5,
		Validated: true,
	}, annotator.ID); err != nil {
		t.Fatalf("Annotate() error = %v", err)
	}

	items, err := svc.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("ListPending() = %d items, want 1", len(items))
	}
	if items[0].ID != pending.ID {
		t.Errorf("pending item id = %s, want %s", items[0].ID, pending.ID)
	}
	if len(items[0].Annotators) != 1 {
		t.Fatalf("annotators = %d, want 1", len(items[0].Annotators))
	}
	if items[0].Annotators[0].Name != "Test Annotator" || items[0].Annotators[0].Score != 0.5 {
		t.Errorf("unexpected annotator summary: %+v", items[0].Annotators[0])
	}

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.Total != 3 || stats.Pending != 1 || stats.Ready != 1 || stats.Rejected != 1 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

// ========== 导出测试 ==========

func TestExport(t *testing.T) {
	repo := repository.NewRepositories(testutil.NewTestDB(t))
	svc := NewService(repo)

	ready := seedItem(t, repo, model.StatusReady)
	seedItem(t, repo, model.StatusPending)

	data, err := svc.ExportJSON(context.Background())
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	if !strings.Contains(string(data), ready.ID) {
		t.Error("json export missing ready item")
	}
	if strings.Count(string(data), `"id"`) != 1 {
		t.Errorf("json export should contain exactly the ready items: %s", data)
	}

	csvData, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	if len(lines) != 2 {
		t.Fatalf("csv export = %d lines, want header + 1 row", len(lines))
	}
	if lines[0] != "id,question,answer,created_at" {
		t.Errorf("csv header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], ready.ID+",") {
		t.Errorf("csv row = %q, want prefix %s", lines[1], ready.ID)
	}
}
