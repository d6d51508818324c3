package repository

import (
	"context"
	"testing"
	"time"

	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateLoadsUser(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user_c1", models.RoleUser)
	post := seedPost(t, db, user, "p", baseTime, false)

	comment := &models.Comment{PostID: post.ID, UserID: user.ID, Text: "first"}
	require.NoError(t, repo.Create(ctx, comment))

	assert.NotEqual(t, uuid.Nil, comment.ID)
	assert.Equal(t, 0, comment.Upvotes)
	require.NotNil(t, comment.User)
	assert.Equal(t, user.Name, comment.User.Name)
}

func TestCommentRepository_SortOrders(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user_sort", models.RoleUser)
	post := seedPost(t, db, user, "p", baseTime, false)

	a := seedComment(t, db, post, user, nil, 1, baseTime)
	b := seedComment(t, db, post, user, nil, 5, baseTime.Add(time.Minute))
	c := seedComment(t, db, post, user, nil, 3, baseTime.Add(2*time.Minute))

	tests := []struct {
		sort models.CommentSort
		want []uuid.UUID
	}{
		{models.SortNewest, []uuid.UUID{c.ID, b.ID, a.ID}},
		{models.SortOldest, []uuid.UUID{a.ID, b.ID, c.ID}},
		{models.SortUpvotes, []uuid.UUID{b.ID, c.ID, a.ID}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sort), func(t *testing.T) {
			comments, err := repo.ListByPost(ctx, post.ID, tt.sort)
			require.NoError(t, err)
			got := make([]uuid.UUID, 0, len(comments))
			for _, cm := range comments {
				got = append(got, cm.ID)
				require.NotNil(t, cm.User)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommentRepository_ListReplies(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user_replies", models.RoleUser)
	post := seedPost(t, db, user, "p", baseTime, false)
	otherPost := seedPost(t, db, user, "q", baseTime, false)

	parent := seedComment(t, db, post, user, nil, 0, baseTime)
	r1 := seedComment(t, db, post, user, parent, 0, baseTime.Add(time.Minute))
	r2 := seedComment(t, db, post, user, parent, 0, baseTime.Add(2*time.Minute))
	seedComment(t, db, post, user, r1, 0, baseTime.Add(3*time.Minute))
	seedComment(t, db, otherPost, user, parent, 0, baseTime.Add(4*time.Minute))

	replies, err := repo.ListReplies(ctx, post.ID, parent.ID, models.SortOldest)
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, r1.ID, replies[0].ID)
	assert.Equal(t, r2.ID, replies[1].ID)

	all, err := repo.ListByPost(ctx, post.ID, models.SortNewest)
	require.NoError(t, err)
	assert.Len(t, all, 4, "listing a post includes replies at every depth")
}

func TestCommentRepository_DeletedStayVisible(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user_visible", models.RoleUser)
	post := seedPost(t, db, user, "p", baseTime, false)
	c := seedComment(t, db, post, user, nil, 2, baseTime)

	flipped, err := repo.SoftDelete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, flipped)

	flipped, err = repo.SoftDelete(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, flipped)

	comments, err := repo.ListByPost(ctx, post.ID, models.SortNewest)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.True(t, comments[0].IsDeleted)
	assert.Equal(t, 2, comments[0].Upvotes, "deleting leaves the counter untouched")
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewCommentRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, "Comment not found", err.Error())
}

func TestCommentRepository_Create_UnknownUserAccepted(t *testing.T) {
	db := setupSQLiteDB(t)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	author := seedUser(t, db, "user_fk_author", models.RoleUser)
	post := seedPost(t, db, author, "p", baseTime, false)

	comment := &models.Comment{PostID: post.ID, UserID: uuid.New(), Text: "ghost"}
	require.NoError(t, repo.Create(ctx, comment))
	assert.Nil(t, comment.User)

	missing := uuid.New()
	reply := &models.Comment{PostID: post.ID, UserID: author.ID, ParentCommentID: &missing, Text: "re"}
	err := repo.Create(ctx, reply)
	require.Error(t, err)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	assert.Equal(t, "Parent comment not found", err.Error())
}
