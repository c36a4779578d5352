package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/andrewpaige1/flashcard-api/repositories"
	mock_services "github.com/andrewpaige1/flashcard-api/services/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_services.MockFlashcardStore)) *FlashcardService {
	store := mock_services.NewMockFlashcardStore(ctrl)
	if setupMock != nil {
		setupMock(store)
	}

	return NewFlashcardService(store, zap.NewNop())
}

func rawItems(t *testing.T, items ...any) []json.RawMessage {
	t.Helper()

	out := make([]json.RawMessage, len(items))
	for i, item := range items {
		b, err := json.Marshal(item)
		require.NoError(t, err)
		out[i] = b
	}
	return out
}

var niHao = models.FlashcardInput{
	Chinese:    "你好",
	Pinyin:     "nǐ hǎo",
	Vietnamese: "xin chào",
	Example:    "你好!",
	ExampleVi:  "Xin chào!",
}

func TestFlashcardService_List(t *testing.T) {
	t.Parallel()

	stored := []models.Flashcard{niHao.ToFlashcard("A1")}
	stored[0].ID = 1

	tests := []struct {
		name        string
		f           func(*mock_services.MockFlashcardStore)
		want        []models.Flashcard
		wantErr     bool
		wantMissing bool
	}{
		{
			name: "success",
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ListByLevel(gomock.Any(), "A1").Return(stored, nil)
			},
			want: stored,
		},
		{
			name: "empty level is not found",
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ListByLevel(gomock.Any(), "A1").Return([]models.Flashcard{}, nil)
			},
			wantErr:     true,
			wantMissing: true,
		},
		{
			name: "store error",
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ListByLevel(gomock.Any(), "A1").Return(nil, &repositories.StoreError{Op: "list", Err: errors.New("db down")})
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newServiceMock(t, ctrl, tt.f)

			got, err := svc.List(context.Background(), "A1")
			if tt.wantErr {
				require.Error(t, err)
				var notFound *NotFoundError
				assert.Equal(t, tt.wantMissing, errors.As(err, &notFound))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlashcardService_Add(t *testing.T) {
	t.Parallel()

	inserted := []models.Flashcard{niHao.ToFlashcard("A1")}
	inserted[0].ID = 7
	inserted[0].CreatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	inserted[0].UpdatedAt = inserted[0].CreatedAt

	xieXie := niHao
	xieXie.Chinese = "谢谢"

	tests := []struct {
		name        string
		level       string
		items       []any
		f           func(*mock_services.MockFlashcardStore)
		want        *AddResult
		wantDetails []string
		wantDups    []string
		wantErr     bool
	}{
		{
			name:  "success",
			level: "A1",
			items: []any{niHao},
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(false, nil)
				m.EXPECT().InsertBatch(gomock.Any(), "A1", []models.FlashcardInput{niHao}).Return(inserted, nil)
				m.EXPECT().CountByLevel(gomock.Any(), "A1").Return(int64(4), nil)
			},
			want: &AddResult{Added: inserted, Total: 4},
		},
		{
			name:    "empty batch",
			level:   "A1",
			items:   []any{},
			wantErr: true,
		},
		{
			name:    "level too long",
			level:   "ABCDEFGHIJK",
			items:   []any{niHao},
			wantErr: true,
		},
		{
			name:  "all invalid items reported, nothing stored",
			level: "A1",
			items: []any{
				map[string]string{"chinese": "你好", "pinyin": "nǐ hǎo", "vietnamese": "xin chào", "example": "你好!"},
				niHao,
				map[string]string{"chinese": "", "pinyin": "x", "vietnamese": "x", "example": "x", "example_vi": "x"},
			},
			wantDetails: []string{
				`Flashcard 1: "example_vi" is required`,
				`Flashcard 3: "chinese" is not allowed to be empty`,
			},
			wantErr: true,
		},
		{
			name:  "duplicate against stored rows",
			level: "A1",
			items: []any{niHao, xieXie},
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(true, nil)
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "谢谢").Return(false, nil)
			},
			wantDups: []string{"你好"},
			wantErr:  true,
		},
		{
			name:  "duplicate inside batch",
			level: "A1",
			items: []any{niHao, niHao},
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(false, nil)
			},
			wantDups: []string{"你好"},
			wantErr:  true,
		},
		{
			name:  "unique index race becomes duplicate",
			level: "A1",
			items: []any{niHao},
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(false, nil)
				m.EXPECT().InsertBatch(gomock.Any(), "A1", gomock.Any()).
					Return(nil, &repositories.StoreError{Op: "insert", Err: gorm.ErrDuplicatedKey})
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(true, nil)
			},
			wantDups: []string{"你好"},
			wantErr:  true,
		},
		{
			name:  "insert error",
			level: "A1",
			items: []any{niHao},
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(false, nil)
				m.EXPECT().InsertBatch(gomock.Any(), "A1", gomock.Any()).
					Return(nil, &repositories.StoreError{Op: "insert", Err: errors.New("db down")})
			},
			wantErr: true,
		},
		{
			name:  "count error",
			level: "A1",
			items: []any{niHao},
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().ExistsByKey(gomock.Any(), "A1", "你好").Return(false, nil)
				m.EXPECT().InsertBatch(gomock.Any(), "A1", gomock.Any()).Return(inserted, nil)
				m.EXPECT().CountByLevel(gomock.Any(), "A1").Return(int64(0), errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newServiceMock(t, ctrl, tt.f)

			got, err := svc.Add(context.Background(), tt.level, rawItems(t, tt.items...))
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantDetails != nil {
					var verr *ValidationError
					require.True(t, errors.As(err, &verr))
					assert.Equal(t, tt.wantDetails, verr.Details)
				}
				if tt.wantDups != nil {
					var derr *DuplicateError
					require.True(t, errors.As(err, &derr))
					assert.Equal(t, tt.wantDups, derr.Duplicates)
					assert.Equal(t, tt.level, derr.Level)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlashcardService_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		f           func(*mock_services.MockFlashcardStore)
		want        int64
		wantErr     bool
		wantMissing bool
	}{
		{
			name: "success",
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().DeleteByLevel(gomock.Any(), "A1").Return(int64(3), nil)
			},
			want: 3,
		},
		{
			name: "absent level",
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().DeleteByLevel(gomock.Any(), "A1").Return(int64(0), nil)
			},
			wantErr:     true,
			wantMissing: true,
		},
		{
			name: "store error",
			f: func(m *mock_services.MockFlashcardStore) {
				m.EXPECT().DeleteByLevel(gomock.Any(), "A1").Return(int64(0), errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := newServiceMock(t, ctrl, tt.f)

			got, err := svc.Delete(context.Background(), "A1")
			if tt.wantErr {
				require.Error(t, err)
				var notFound *NotFoundError
				assert.Equal(t, tt.wantMissing, errors.As(err, &notFound))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
