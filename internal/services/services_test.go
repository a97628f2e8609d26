package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-board-api/internal/models"
	"github.com/yukikurage/project-board-api/internal/repository"
	"github.com/yukikurage/project-board-api/internal/testutil"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }

// failingTaskRepo fails every call with a fixed storage error.
type failingTaskRepo struct{ err error }

func (r failingTaskRepo) Create(context.Context, *models.Task) error { return r.err }
func (r failingTaskRepo) Update(context.Context, uint64, map[string]any) error { return r.err }
func (r failingTaskRepo) Delete(context.Context, uint64) error { return r.err }

func TestUserService_AddUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	id, err := svc.AddUser(ctx, strPtr("Alice"))
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = svc.AddUser(ctx, strPtr("Alice"))
	assert.ErrorIs(t, err, ErrUserNameTaken)
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.AddUser(ctx, nil)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddUser(ctx, strPtr("   "))
	assert.ErrorIs(t, err, ErrUserNameRequired)
}

func TestUserService_RenameUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))
	ctx := context.Background()

	alice := testutil.CreateUser(t, db, "Alice")
	testutil.CreateUser(t, db, "Bob")

	assert.ErrorIs(t, svc.RenameUser(ctx, alice.ID, strPtr("Bob")), ErrUserNameTaken)
	assert.ErrorIs(t, svc.RenameUser(ctx, alice.ID, nil), ErrUserNameRequired)
	require.NoError(t, svc.RenameUser(ctx, alice.ID, strPtr("Alicia")))
	assert.NoError(t, svc.RenameUser(ctx, 404, strPtr("Ghost")))
}

func TestProjectService_AddProjectDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db))

	id, err := svc.AddProject(context.Background(), AddProjectInput{
		Name:      strPtr("P1"),
		StartDate: strPtr("2024-01-01"),
		Deadline:  strPtr("2024-02-01"),
	})
	require.NoError(t, err)

	var project models.Project
	require.NoError(t, db.First(&project, id).Error)
	assert.Equal(t, 2, project.Priority)
	assert.Equal(t, "active", project.Status)
	assert.Nil(t, project.UserID)
	assert.Zero(t, project.Progress)
}

func TestProjectService_AddProjectKeepsZeroPriority(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db))
	zero := 0

	id, err := svc.AddProject(context.Background(), AddProjectInput{
		Name:      strPtr("Urgent"),
		StartDate: strPtr("2024-01-01"),
		Deadline:  strPtr("2024-02-01"),
		Priority:  &zero,
	})
	require.NoError(t, err)

	var project models.Project
	require.NoError(t, db.First(&project, id).Error)
	assert.Equal(t, 0, project.Priority)
}

func TestProjectService_AddProjectValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db))
	ctx := context.Background()

	_, err := svc.AddProject(ctx, AddProjectInput{StartDate: strPtr("2024-01-01"), Deadline: strPtr("2024-02-01")})
	assert.ErrorIs(t, err, ErrProjectNameRequired)

	_, err = svc.AddProject(ctx, AddProjectInput{Name: strPtr("P"), Deadline: strPtr("2024-02-01")})
	assert.ErrorIs(t, err, ErrStartDateRequired)

	_, err = svc.AddProject(ctx, AddProjectInput{Name: strPtr("P"), StartDate: strPtr("2024-01-01")})
	assert.ErrorIs(t, err, ErrDeadlineRequired)

	_, err = svc.AddProject(ctx, AddProjectInput{
		Name:      strPtr("P"),
		StartDate: strPtr("2024-01-01"),
		Deadline:  strPtr("2024-02-01"),
		Tasks:     []NewTaskInput{{Content: strPtr("ok")}, {}},
	})
	assert.ErrorIs(t, err, ErrTaskContentRequired)

	var count int64
	db.Model(&models.Project{}).Count(&count)
	assert.Zero(t, count)
}

func TestProjectService_AddProjectUnknownOwnerIsInternal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db))
	missing := uint64(77)

	_, err := svc.AddProject(context.Background(), AddProjectInput{
		Name:      strPtr("P"),
		UserID:    &missing,
		StartDate: strPtr("2024-01-01"),
		Deadline:  strPtr("2024-02-01"),
	})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestProjectService_UpdateProjectIsPartial(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewProjectService(repository.NewProjectRepository(db))
	ctx := context.Background()

	project := testutil.CreateProject(t, db, "P1", nil, "active", 3, "2024-02-01")

	require.NoError(t, svc.UpdateProject(ctx, project.ID, UpdateProjectInput{Priority: intPtr(0)}))
	require.NoError(t, svc.UpdateProject(ctx, project.ID, UpdateProjectInput{}))
	require.NoError(t, svc.UpdateProjectStatus(ctx, project.ID, strPtr("paused")))
	assert.ErrorIs(t, svc.UpdateProjectStatus(ctx, project.ID, nil), ErrStatusRequired)

	var reloaded models.Project
	require.NoError(t, db.First(&reloaded, project.ID).Error)
	assert.Equal(t, 0, reloaded.Priority)
	assert.Equal(t, "P1", reloaded.Name)
	assert.Equal(t, "paused", reloaded.Status)
}

func TestTaskService_AddAndUpdate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewTaskService(repository.NewTaskRepository(db))
	ctx := context.Background()

	project := testutil.CreateProject(t, db, "P1", nil, "active", 1, "2024-02-01")

	id, err := svc.AddTask(ctx, project.ID)
	require.NoError(t, err)

	var blank models.Task
	require.NoError(t, db.First(&blank, id).Error)
	assert.Equal(t, "", blank.Content)
	assert.Zero(t, blank.Progress)

	require.NoError(t, svc.UpdateTask(ctx, id, UpdateTaskInput{Deadline: strPtr("2024-01-20"), Progress: intPtr(30)}))
	require.NoError(t, svc.UpdateTask(ctx, id, UpdateTaskInput{Content: strPtr("draft")}))

	var updated models.Task
	require.NoError(t, db.First(&updated, id).Error)
	assert.Equal(t, "draft", updated.Content)
	assert.Equal(t, 30, updated.Progress)
	require.NotNil(t, updated.Deadline)
	assert.Equal(t, "2024-01-20", *updated.Deadline)

	require.NoError(t, svc.UpdateTask(ctx, id, UpdateTaskInput{ClearDeadline: true, Deadline: strPtr("ignored")}))
	require.NoError(t, db.First(&updated, id).Error)
	assert.Nil(t, updated.Deadline)

	require.NoError(t, svc.DeleteTask(ctx, id))
	require.NoError(t, svc.DeleteTask(ctx, id))
}

func TestTaskService_AddTaskToMissingProjectIsInternal(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewTaskService(repository.NewTaskRepository(db))

	_, err := svc.AddTask(context.Background(), 999)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestTaskService_StorageErrorKeepsMessage(t *testing.T) {
	svc := NewTaskService(failingTaskRepo{err: errors.New("database is locked")})

	err := svc.DeleteTask(context.Background(), 1)
	require.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "database is locked")

	err = svc.UpdateTask(context.Background(), 1, UpdateTaskInput{Content: strPtr("x")})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCommentService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewCommentService(repository.NewCommentRepository(db))
	ctx := context.Background()

	project := testutil.CreateProject(t, db, "P1", nil, "active", 1, "2024-02-01")

	_, err := svc.AddComment(ctx, project.ID, nil, strPtr("hi"))
	assert.ErrorIs(t, err, ErrCommentAuthorMissing)
	_, err = svc.AddComment(ctx, project.ID, strPtr("kim"), nil)
	assert.ErrorIs(t, err, ErrCommentTextMissing)

	id, err := svc.AddComment(ctx, project.ID, strPtr("kim"), strPtr(""))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateComment(ctx, id, nil), ErrContentRequired)
	require.NoError(t, svc.UpdateComment(ctx, id, strPtr("edited")))

	var comment models.Comment
	require.NoError(t, db.First(&comment, id).Error)
	assert.Equal(t, "edited", comment.Content)

	require.NoError(t, svc.DeleteComment(ctx, id))
}

func TestPostService(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := NewPostService(repository.NewPostRepository(db))
	ctx := context.Background()

	author := testutil.CreateUser(t, db, "Alice")

	_, err := svc.AddPost(ctx, AddPostInput{Content: strPtr("c"), UserID: &author.ID})
	assert.ErrorIs(t, err, ErrPostTitleRequired)
	_, err = svc.AddPost(ctx, AddPostInput{Title: strPtr("t"), UserID: &author.ID})
	assert.ErrorIs(t, err, ErrPostContentRequired)
	_, err = svc.AddPost(ctx, AddPostInput{Title: strPtr("t"), Content: strPtr("c")})
	assert.ErrorIs(t, err, ErrUserIDRequired)

	var posts int64
	db.Model(&models.Post{}).Count(&posts)
	assert.Zero(t, posts)

	id, err := svc.AddPost(ctx, AddPostInput{Title: strPtr("t"), Content: strPtr("c"), UserID: &author.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdatePost(ctx, id, strPtr("t2"), nil), ErrPostContentRequired)
	assert.ErrorIs(t, svc.UpdatePost(ctx, id, nil, strPtr("c2")), ErrPostTitleRequired)
	require.NoError(t, svc.UpdatePost(ctx, id, strPtr("t2"), strPtr("c2")))

	require.NoError(t, svc.DeletePost(ctx, id))
	assert.ErrorIs(t, db.First(&models.Post{}, id).Error, gorm.ErrRecordNotFound)
}

func TestSnapshotAndReadTracking(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()

	posts := NewPostService(repository.NewPostRepository(db))
	snapshots := NewSnapshotService(repository.NewSnapshotRepository(db))
	reads := NewReadTrackingService(repository.NewReadStatusRepository(db))

	alice := testutil.CreateUser(t, db, "Alice")
	bob := testutil.CreateUser(t, db, "Bob")

	_, err := posts.AddPost(ctx, AddPostInput{Title: strPtr("Hello"), Content: strPtr("x"), UserID: &alice.ID})
	require.NoError(t, err)

	anonymous, err := snapshots.GetSnapshot(ctx, nil)
	require.NoError(t, err)
	assert.False(t, anonymous.HasNewPosts)
	require.Len(t, anonymous.Posts, 1)
	assert.Equal(t, "Alice", anonymous.Posts[0].AuthorName)

	forAlice, err := snapshots.GetSnapshot(ctx, &alice.ID)
	require.NoError(t, err)
	assert.False(t, forAlice.HasNewPosts)

	forBob, err := snapshots.GetSnapshot(ctx, &bob.ID)
	require.NoError(t, err)
	assert.True(t, forBob.HasNewPosts)

	_, err = reads.MarkAllAsRead(ctx, nil)
	assert.ErrorIs(t, err, ErrUserIDRequired)
	zero := uint64(0)
	_, err = reads.MarkAllAsRead(ctx, &zero)
	assert.ErrorIs(t, err, ErrUserIDRequired)

	marked, err := reads.MarkAllAsRead(ctx, &bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	marked, err = reads.MarkAllAsRead(ctx, &bob.ID)
	require.NoError(t, err)
	assert.Zero(t, marked)

	forBob, err = snapshots.GetSnapshot(ctx, &bob.ID)
	require.NoError(t, err)
	assert.False(t, forBob.HasNewPosts)
}
