package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kudosapp/kudos/internal/common"
	"github.com/kudosapp/kudos/internal/server/models"
	kudosrepo "github.com/kudosapp/kudos/internal/server/repositories/kudos"
)

func testStyle() models.KudoStyle {
	return models.KudoStyle{
		BackgroundColor: models.ColorRed,
		TextColor:       models.ColorWhite,
		Emoji:           models.EmojiThumbsUp,
	}
}

func TestCreateKudo_EmptyMessage(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeKudosRepo{}
	s := NewKudoService(db, &fakeRepoManager{k: repo})

	_, err := s.Create(context.Background(), "", "u1", "u2", testStyle())
	assert.ErrorIs(t, err, common.ErrMessageRequired)
	assert.False(t, repo.createCalled, "nothing may be written")
}

func TestCreateKudo_EmptyRecipient(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeKudosRepo{}
	s := NewKudoService(db, &fakeRepoManager{k: repo})

	_, err := s.Create(context.Background(), "well done", "u1", "", testStyle())
	assert.ErrorIs(t, err, common.ErrRecipientRequired)
	assert.False(t, repo.createCalled)
}

func TestCreateKudo_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeKudosRepo{}
	s := NewKudoService(db, &fakeRepoManager{k: repo})

	kudo, err := s.Create(context.Background(), "well done", "u1", "u2", testStyle())
	require.NoError(t, err)
	assert.Equal(t, "generated-id", kudo.ID)
	assert.Equal(t, "u1", kudo.AuthorID)
	assert.Equal(t, "u2", kudo.RecipientID)
	assert.Equal(t, models.EmojiThumbsUp, kudo.Style.Emoji)
}

func TestListKudos_PassesQueryThrough(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeKudosRepo{}
	s := NewKudoService(db, &fakeRepoManager{k: repo})

	_, err := s.List(context.Background(), "u1", kudosrepo.BuildQuery("sender", "ann"))
	require.NoError(t, err)
	assert.Equal(t, kudosrepo.SortBySender, repo.listQuery.Sort)
	assert.Equal(t, "ann", repo.listQuery.Filter)
}

func TestRecentKudos_UsesFixedLimit(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeKudosRepo{}
	s := NewKudoService(db, &fakeRepoManager{k: repo})

	_, err := s.Recent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, recentKudoCount, repo.recentLimit)
}
