package session_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const (
	testSessionID    = "session_123"
	testHistoryKey   = "sheet_session:session_123:history"
	testResourcesKey = "sheet_session:session_123:resources"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	redis *testutils.TestRedis
	repo  session.Repository
	ctx   context.Context
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.redis = testutils.NewTestRedis(s.T())
	repo, err := session.NewRedis(&session.RedisConfig{
		Client: s.redis.Client,
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func newEntry(n int) *entities.HistoryEntry {
	return &entities.HistoryEntry{
		ID:        fmt.Sprintf("entry_%d", n),
		Timestamp: time.Date(2026, 1, 2, 3, 4, n, 0, time.UTC),
		Label:     fmt.Sprintf("Roll %d", n),
		Record: &entities.Record{
			Ability:      "Hook Sword (G4)",
			DamageRolls:  []int{n},
			DamageTotal:  n + 12,
			PrimaryLabel: entities.PrimaryLabelDamage,
			PrimaryValue: n + 12,
		},
	}
}

func (s *RedisRepositoryTestSuite) TestNewRedis() {
	testCases := []struct {
		name    string
		config  *session.RedisConfig
		wantErr string
	}{
		{name: "nil config", config: nil, wantErr: "config cannot be nil"},
		{name: "nil client", config: &session.RedisConfig{}, wantErr: "redis client is required"},
		{name: "negative ttl", config: &session.RedisConfig{Client: s.redis.Client, TTL: -time.Second}, wantErr: "ttl cannot be negative"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := session.NewRedis(tc.config)
			s.Require().Error(err)
			s.Nil(repo)
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}

func (s *RedisRepositoryTestSuite) TestAppendHistory_NewestFirstAndCapped() {
	for i := 1; i <= 5; i++ {
		out, err := s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{
			SessionID: testSessionID,
			Entry:     newEntry(i),
			Limit:     3,
		})
		s.Require().NoError(err)
		s.Equal(min(i, 3), out.Size)
	}

	list, err := s.repo.ListHistory(s.ctx, session.ListHistoryInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 3)
	s.Equal("entry_5", list.Entries[0].ID)
	s.Equal("entry_4", list.Entries[1].ID)
	s.Equal("entry_3", list.Entries[2].ID)
	s.Equal(newEntry(5).Record, list.Entries[0].Record)
	s.True(newEntry(5).Timestamp.Equal(list.Entries[0].Timestamp))

	ttl := s.redis.Server.TTL(testHistoryKey)
	s.Equal(time.Hour, ttl)
}

func (s *RedisRepositoryTestSuite) TestListHistory_Limit() {
	for i := 1; i <= 4; i++ {
		_, err := s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{
			SessionID: testSessionID,
			Entry:     newEntry(i),
			Limit:     50,
		})
		s.Require().NoError(err)
	}

	list, err := s.repo.ListHistory(s.ctx, session.ListHistoryInput{SessionID: testSessionID, Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(list.Entries, 2)
	s.Equal("entry_4", list.Entries[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListHistory_EmptySession() {
	list, err := s.repo.ListHistory(s.ctx, session.ListHistoryInput{SessionID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(list.Entries)
	s.Empty(list.Entries)
}

func (s *RedisRepositoryTestSuite) TestListHistory_CorruptEntry() {
	_, err := s.redis.Server.Lpush(testHistoryKey, "{not json")
	s.Require().NoError(err)

	_, err = s.repo.ListHistory(s.ctx, session.ListHistoryInput{SessionID: testSessionID})
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to unmarshal history entry")
}

func (s *RedisRepositoryTestSuite) TestHistoryExpires() {
	_, err := s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{
		SessionID: testSessionID,
		Entry:     newEntry(1),
		Limit:     10,
	})
	s.Require().NoError(err)

	s.redis.Server.FastForward(time.Hour + time.Second)

	list, err := s.repo.ListHistory(s.ctx, session.ListHistoryInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Empty(list.Entries)
}

func (s *RedisRepositoryTestSuite) TestClearHistory() {
	for i := 1; i <= 2; i++ {
		_, err := s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{
			SessionID: testSessionID,
			Entry:     newEntry(i),
			Limit:     10,
		})
		s.Require().NoError(err)
	}

	out, err := s.repo.ClearHistory(s.ctx, session.ClearHistoryInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(2, out.EntriesDeleted)
	s.False(s.redis.Server.Exists(testHistoryKey))

	out, err = s.repo.ClearHistory(s.ctx, session.ClearHistoryInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(0, out.EntriesDeleted)
}

func (s *RedisRepositoryTestSuite) TestResources() {
	_, err := s.repo.GetResources(s.ctx, session.GetResourcesInput{SessionID: testSessionID})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	resources := entities.Resources{HP: 40, Energy: 12, StoredEnergy: 70}
	err = s.repo.SaveResources(s.ctx, session.SaveResourcesInput{
		SessionID: testSessionID,
		Resources: resources,
	})
	s.Require().NoError(err)
	s.Equal(time.Hour, s.redis.Server.TTL(testResourcesKey))

	out, err := s.repo.GetResources(s.ctx, session.GetResourcesInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(resources, out.Resources)
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{Entry: newEntry(1), Limit: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{SessionID: testSessionID, Limit: 1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.AppendHistory(s.ctx, session.AppendHistoryInput{SessionID: testSessionID, Entry: newEntry(1)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ListHistory(s.ctx, session.ListHistoryInput{SessionID: testSessionID, Limit: -1})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.ClearHistory(s.ctx, session.ClearHistoryInput{})
	s.True(errors.IsInvalidArgument(err))

	err = s.repo.SaveResources(s.ctx, session.SaveResourcesInput{})
	s.True(errors.IsInvalidArgument(err))
}
