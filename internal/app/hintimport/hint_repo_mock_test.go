package hintimport

import (
	"context"
	"sync"

	"github.com/heartmarshall/nihongo-hints/internal/domain"
)

var _ HintRepo = &HintRepoMock{}

type HintRepoMock struct {
	UpsertAllFunc        func(ctx context.Context, records []domain.HintRecord, batchSize int) (int, error)
	ReplaceDirectionFunc func(ctx context.Context, dir domain.HintDirection, records []domain.HintRecord, batchSize int) (int, int, error)

	calls struct {
		UpsertAll []struct {
			Ctx       context.Context
			Records   []domain.HintRecord
			BatchSize int
		}
		ReplaceDirection []struct {
			Ctx       context.Context
			Dir       domain.HintDirection
			Records   []domain.HintRecord
			BatchSize int
		}
	}
	lockUpsertAll        sync.RWMutex
	lockReplaceDirection sync.RWMutex
}

func (mock *HintRepoMock) UpsertAll(ctx context.Context, records []domain.HintRecord, batchSize int) (int, error) {
	if mock.UpsertAllFunc == nil {
		panic("HintRepoMock.UpsertAllFunc: method is nil but HintRepo.UpsertAll was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Records   []domain.HintRecord
		BatchSize int
	}{Ctx: ctx, Records: records, BatchSize: batchSize}
	mock.lockUpsertAll.Lock()
	mock.calls.UpsertAll = append(mock.calls.UpsertAll, callInfo)
	mock.lockUpsertAll.Unlock()
	return mock.UpsertAllFunc(ctx, records, batchSize)
}

func (mock *HintRepoMock) UpsertAllCalls() []struct {
	Ctx       context.Context
	Records   []domain.HintRecord
	BatchSize int
} {
	mock.lockUpsertAll.RLock()
	calls := mock.calls.UpsertAll
	mock.lockUpsertAll.RUnlock()
	return calls
}

func (mock *HintRepoMock) ReplaceDirection(ctx context.Context, dir domain.HintDirection, records []domain.HintRecord, batchSize int) (int, int, error) {
	if mock.ReplaceDirectionFunc == nil {
		panic("HintRepoMock.ReplaceDirectionFunc: method is nil but HintRepo.ReplaceDirection was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Dir       domain.HintDirection
		Records   []domain.HintRecord
		BatchSize int
	}{Ctx: ctx, Dir: dir, Records: records, BatchSize: batchSize}
	mock.lockReplaceDirection.Lock()
	mock.calls.ReplaceDirection = append(mock.calls.ReplaceDirection, callInfo)
	mock.lockReplaceDirection.Unlock()
	return mock.ReplaceDirectionFunc(ctx, dir, records, batchSize)
}

func (mock *HintRepoMock) ReplaceDirectionCalls() []struct {
	Ctx       context.Context
	Dir       domain.HintDirection
	Records   []domain.HintRecord
	BatchSize int
} {
	mock.lockReplaceDirection.RLock()
	calls := mock.calls.ReplaceDirection
	mock.lockReplaceDirection.RUnlock()
	return calls
}
