package simplecms_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendant/simple-cms/pkg/simplecms"
	memoryrepo "github.com/tendant/simple-cms/pkg/simplecms/repo/memory"
)

// recordingEventSink captures fired events for assertions.
type recordingEventSink struct {
	created       []string
	updated       []string
	deleted       []string
	statusChanges []string
}

func (r *recordingEventSink) ContentCreated(ctx context.Context, content *simplecms.Article) error {
	r.created = append(r.created, content.ID)
	return nil
}

func (r *recordingEventSink) ContentUpdated(ctx context.Context, content *simplecms.Article, version int) error {
	r.updated = append(r.updated, content.ID)
	return nil
}

func (r *recordingEventSink) ContentDeleted(ctx context.Context, contentID string) error {
	r.deleted = append(r.deleted, contentID)
	return nil
}

func (r *recordingEventSink) StatusChanged(ctx context.Context, contentID string, oldStatus, newStatus simplecms.ContentStatus) error {
	r.statusChanges = append(r.statusChanges, string(oldStatus)+"->"+string(newStatus))
	return nil
}

func TestServiceCreation(t *testing.T) {
	repo := memoryrepo.New[*simplecms.Article]()
	validator := simplecms.NewArticleValidator()
	matrix := simplecms.DefaultArticleMatrix()

	tests := []struct {
		name        string
		options     []simplecms.Option[*simplecms.Article]
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     nil,
			expectError: true,
		},
		{
			name: "missing validator should fail",
			options: []simplecms.Option[*simplecms.Article]{
				simplecms.WithRepository[*simplecms.Article](repo),
				simplecms.WithAccessMatrix[*simplecms.Article](matrix),
			},
			expectError: true,
		},
		{
			name: "missing access matrix should fail",
			options: []simplecms.Option[*simplecms.Article]{
				simplecms.WithRepository[*simplecms.Article](repo),
				simplecms.WithValidator[*simplecms.Article](validator),
			},
			expectError: true,
		},
		{
			name: "repository, validator and matrix should succeed",
			options: []simplecms.Option[*simplecms.Article]{
				simplecms.WithRepository[*simplecms.Article](repo),
				simplecms.WithValidator[*simplecms.Article](validator),
				simplecms.WithAccessMatrix[*simplecms.Article](matrix),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := simplecms.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func setupTestService(t *testing.T, extra ...simplecms.Option[*simplecms.Article]) (simplecms.Service[*simplecms.Article], *recordingEventSink) {
	t.Helper()

	sink := &recordingEventSink{}
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	options := append([]simplecms.Option[*simplecms.Article]{
		simplecms.WithRepository[*simplecms.Article](memoryrepo.New[*simplecms.Article]()),
		simplecms.WithValidator[*simplecms.Article](simplecms.NewArticleValidator()),
		simplecms.WithAccessMatrix[*simplecms.Article](simplecms.DefaultArticleMatrix()),
		simplecms.WithEventSink[*simplecms.Article](sink),
		simplecms.WithClock[*simplecms.Article](tickClock(t0)),
	}, extra...)

	svc, err := simplecms.New(options...)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc, sink
}

func TestServiceCreateContent(t *testing.T) {
	svc, sink := setupTestService(t)
	ctx := context.Background()

	t.Run("editor can create", func(t *testing.T) {
		article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle("Test", "Body", "u1"))
		require.NoError(t, err)
		assert.NotEmpty(t, article.ID)
		assert.Equal(t, simplecms.ContentStatusDraft, article.Status)
		assert.False(t, article.CreatedAt.IsZero())

		version, err := svc.GetVersion(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, version)

		history, err := svc.GetVersionHistory(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Empty(t, history)

		assert.Contains(t, sink.created, article.ID)
	})

	t.Run("viewer cannot create", func(t *testing.T) {
		_, err := svc.CreateContent(ctx, simplecms.RoleViewer,
			simplecms.NewArticle("Test", "Body", "u1"))
		assert.ErrorIs(t, err, simplecms.ErrPermissionDenied)
	})

	t.Run("invalid content is refused with full detail", func(t *testing.T) {
		_, err := svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle("", "", "u1"))
		require.ErrorIs(t, err, simplecms.ErrValidationFailed)

		var verr *simplecms.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Title is required.", "Content is required."}, verr.Result.Errors)
	})

	t.Run("zero meta fields are defaulted", func(t *testing.T) {
		article, err := svc.CreateContent(ctx, simplecms.RoleAdmin,
			&simplecms.Article{Title: "Bare", Body: "B", AuthorID: "u2"})
		require.NoError(t, err)
		assert.NotEmpty(t, article.ID)
		assert.Equal(t, simplecms.ContentStatusDraft, article.Status)
		assert.False(t, article.CreatedAt.IsZero())
	})
}

func TestServiceUpdateContent(t *testing.T) {
	svc, sink := setupTestService(t)
	ctx := context.Background()

	article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
		simplecms.NewArticle("T", "C", "u1"))
	require.NoError(t, err)

	t.Run("accepted update snapshots and increments", func(t *testing.T) {
		title := "T2"
		updated, err := svc.UpdateContent(ctx, simplecms.RoleEditor, article.ID,
			simplecms.ArticlePatch{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, "T2", updated.Title)
		assert.Equal(t, "C", updated.Body)

		version, err := svc.GetVersion(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, version)

		history, err := svc.GetVersionHistory(ctx, simplecms.RoleViewer, article.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "T", history[0].Title)

		assert.Contains(t, sink.updated, article.ID)
	})

	t.Run("viewer cannot update", func(t *testing.T) {
		title := "nope"
		_, err := svc.UpdateContent(ctx, simplecms.RoleViewer, article.ID,
			simplecms.ArticlePatch{Title: &title})
		assert.ErrorIs(t, err, simplecms.ErrPermissionDenied)
	})

	t.Run("invalid patch is refused without committing", func(t *testing.T) {
		before, err := svc.GetVersion(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)

		empty := ""
		_, err = svc.UpdateContent(ctx, simplecms.RoleEditor, article.ID,
			simplecms.ArticlePatch{Title: &empty})
		assert.ErrorIs(t, err, simplecms.ErrValidationFailed)

		after, err := svc.GetVersion(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, before, after, "rejected updates leave no trace")
	})

	t.Run("unknown id", func(t *testing.T) {
		title := "x"
		_, err := svc.UpdateContent(ctx, simplecms.RoleEditor, "missing",
			simplecms.ArticlePatch{Title: &title})
		assert.ErrorIs(t, err, simplecms.ErrContentNotFound)
	})
}

func TestServiceStatusTransitions(t *testing.T) {
	svc, sink := setupTestService(t)
	ctx := context.Background()

	article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
		simplecms.NewArticle("T", "C", "u1"))
	require.NoError(t, err)

	t.Run("publish stamps publishedAt", func(t *testing.T) {
		published, err := svc.PublishContent(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, simplecms.ContentStatusPublished, published.Status)
		require.NotNil(t, published.PublishedAt)
		assert.Contains(t, sink.statusChanges, "draft->published")
	})

	t.Run("publish twice fails", func(t *testing.T) {
		_, err := svc.PublishContent(ctx, simplecms.RoleEditor, article.ID)
		assert.ErrorIs(t, err, simplecms.ErrInvalidTransition)
	})

	t.Run("archive and freeze", func(t *testing.T) {
		archived, err := svc.ArchiveContent(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, simplecms.ContentStatusArchived, archived.Status)

		title := "late edit"
		_, err = svc.UpdateContent(ctx, simplecms.RoleEditor, article.ID,
			simplecms.ArticlePatch{Title: &title})
		assert.ErrorIs(t, err, simplecms.ErrContentArchived)

		_, err = svc.PublishContent(ctx, simplecms.RoleEditor, article.ID)
		assert.ErrorIs(t, err, simplecms.ErrInvalidTransition)
	})

	t.Run("every transition is a version", func(t *testing.T) {
		version, err := svc.GetVersion(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, version)

		history, err := svc.GetVersionHistory(ctx, simplecms.RoleViewer, article.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, simplecms.ContentStatusDraft, history[0].Status)
		assert.Equal(t, simplecms.ContentStatusPublished, history[1].Status)
	})
}

func TestServiceDeleteContent(t *testing.T) {
	svc, sink := setupTestService(t)
	ctx := context.Background()

	article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
		simplecms.NewArticle("T", "C", "u1"))
	require.NoError(t, err)

	t.Run("viewer cannot delete", func(t *testing.T) {
		err := svc.DeleteContent(ctx, simplecms.RoleViewer, article.ID, false)
		assert.ErrorIs(t, err, simplecms.ErrPermissionDenied)
	})

	t.Run("editor cannot delete articles", func(t *testing.T) {
		err := svc.DeleteContent(ctx, simplecms.RoleEditor, article.ID, false)
		assert.ErrorIs(t, err, simplecms.ErrPermissionDenied)
	})

	t.Run("published content needs force", func(t *testing.T) {
		_, err := svc.PublishContent(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)

		err = svc.DeleteContent(ctx, simplecms.RoleAdmin, article.ID, false)
		assert.ErrorIs(t, err, simplecms.ErrInvalidTransition)

		err = svc.DeleteContent(ctx, simplecms.RoleAdmin, article.ID, true)
		require.NoError(t, err)
		assert.Contains(t, sink.deleted, article.ID)

		_, err = svc.GetContent(ctx, simplecms.RoleAdmin, article.ID)
		assert.ErrorIs(t, err, simplecms.ErrContentNotFound)
	})
}

func TestServiceListContent(t *testing.T) {
	svc, _ := setupTestService(t)
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle(title, "body", "u1"))
		require.NoError(t, err)
	}

	articles, err := svc.ListContent(ctx, simplecms.RoleViewer)
	require.NoError(t, err)
	assert.Len(t, articles, 3)
}

func TestServiceHooks(t *testing.T) {
	ctx := context.Background()

	t.Run("before-update hook can veto", func(t *testing.T) {
		hooks := &simplecms.Hooks[*simplecms.Article]{
			BeforeUpdate: []simplecms.BeforeUpdateHook[*simplecms.Article]{
				func(hctx *simplecms.HookContext, contentID string, patch simplecms.Patch[*simplecms.Article]) error {
					return errors.New("frozen by hook")
				},
			},
		}
		svc, _ := setupTestService(t, simplecms.WithHooks[*simplecms.Article](hooks))

		article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle("T", "C", "u1"))
		require.NoError(t, err)

		title := "T2"
		_, err = svc.UpdateContent(ctx, simplecms.RoleEditor, article.ID,
			simplecms.ArticlePatch{Title: &title})
		assert.ErrorContains(t, err, "frozen by hook")

		version, err := svc.GetVersion(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})

	t.Run("status change hook fires on publish", func(t *testing.T) {
		var transitions []string
		hooks := &simplecms.Hooks[*simplecms.Article]{
			OnStatusChange: []simplecms.StatusChangeHook{
				func(hctx *simplecms.HookContext, contentID string, oldStatus, newStatus simplecms.ContentStatus) error {
					transitions = append(transitions, string(oldStatus)+"->"+string(newStatus))
					return nil
				},
			},
		}
		svc, _ := setupTestService(t, simplecms.WithHooks[*simplecms.Article](hooks))

		article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle("T", "C", "u1"))
		require.NoError(t, err)

		_, err = svc.PublishContent(ctx, simplecms.RoleEditor, article.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"draft->published"}, transitions)
	})

	t.Run("validation hook vetoes creation", func(t *testing.T) {
		hooks := &simplecms.Hooks[*simplecms.Article]{
			BeforeCreate: []simplecms.BeforeCreateHook[*simplecms.Article]{
				simplecms.ValidationHook(func(a *simplecms.Article) error {
					if a.AuthorID == "banned" {
						return errors.New("author is banned")
					}
					return nil
				}),
			},
		}
		svc, _ := setupTestService(t, simplecms.WithHooks[*simplecms.Article](hooks))

		_, err := svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle("T", "C", "banned"))
		assert.ErrorContains(t, err, "author is banned")

		_, err = svc.CreateContent(ctx, simplecms.RoleEditor,
			simplecms.NewArticle("T", "C", "u1"))
		assert.NoError(t, err)
	})
}

func TestUpdateCannotChangeStatus(t *testing.T) {
	svc, sink := setupTestService(t)
	ctx := context.Background()

	article, err := svc.CreateContent(ctx, simplecms.RoleEditor,
		simplecms.NewArticle("T", "C", "u1"))
	require.NoError(t, err)

	// Patches carry no status field, so a plain update can neither publish a
	// draft nor unpublish published content.
	title := "T2"
	updated, err := svc.UpdateContent(ctx, simplecms.RoleEditor, article.ID,
		simplecms.ArticlePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, simplecms.ContentStatusDraft, updated.Status)
	assert.Nil(t, updated.PublishedAt)
	assert.Empty(t, sink.statusChanges)

	published, err := svc.PublishContent(ctx, simplecms.RoleEditor, article.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	publishedAt := *published.PublishedAt

	title = "T3"
	updated, err = svc.UpdateContent(ctx, simplecms.RoleEditor, article.ID,
		simplecms.ArticlePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, simplecms.ContentStatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
	assert.Equal(t, publishedAt, *updated.PublishedAt)
	assert.Equal(t, []string{"draft->published"}, sink.statusChanges)
}
