package service

import (
	"context"
	"errors"
	"strconv"

	repomocks "humanness-tasks/internal/repository/mocks"
	"humanness-tasks/internal/session"

	"go.uber.org/mock/gomock"
)

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

func newFailingRecords(ctrl *gomock.Controller) *repomocks.MockTaskRecordStore {
	m := repomocks.NewMockTaskRecordStore(ctrl)
	m.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("mongo unavailable"))
	return m
}

// flakyStore fails the next failSaves calls to Save.
type flakyStore struct {
	session.Store
	failSaves int
}

func (s *flakyStore) Save(ctx context.Context, fs *session.FlowSession) error {
	if s.failSaves > 0 {
		s.failSaves--
		return errors.New("redis: connection reset")
	}
	return s.Store.Save(ctx, fs)
}
