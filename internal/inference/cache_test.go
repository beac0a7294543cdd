package inference_test

import (
	"diabetes/internal/inference"
	mockinference "diabetes/internal/inference/mock"
	"diabetes/pkg/domain"
	"diabetes/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCache_Memoizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockinference.NewMockPredictor(ctrl)

	p, err := inference.NewCache(next, 8)
	require.NoError(t, err)

	record := domain.DefaultPatientRecord()
	want := domain.PredictionOutcome{Label: 1, IsPositiveClass: true, ProbabilityPositive: 80, ProbabilityNegative: 20}
	next.EXPECT().Predict(record).Return(want, nil).Times(1)

	for range 3 {
		got, err := p.Predict(record)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestCache_DoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockinference.NewMockPredictor(ctrl)

	p, err := inference.NewCache(next, 8)
	require.NoError(t, err)

	record := domain.DefaultPatientRecord()
	next.EXPECT().Predict(record).Return(domain.PredictionOutcome{}, serrors.KindOnly(serrors.ErrScalingFailed)).Times(2)

	for range 2 {
		_, err := p.Predict(record)
		require.ErrorIs(t, err, serrors.ErrScalingFailed)
	}
	require.Zero(t, p.(*inference.Cache).Len())
}

func TestCache_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockinference.NewMockPredictor(ctrl)
	next.EXPECT().Ready().Return(true)
	next.EXPECT().ModelName().Return("Random Forest")

	p, err := inference.NewCache(next, 1)
	require.NoError(t, err)
	require.True(t, p.Ready())
	require.Equal(t, "Random Forest", p.ModelName())
}

func TestCache_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mockinference.NewMockPredictor(ctrl)

	for _, size := range []int{0, -1} {
		p, err := inference.NewCache(next, size)
		require.NoError(t, err)
		require.Same(t, next, p)
	}
}
