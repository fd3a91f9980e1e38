package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appmemory "certflow/internal/application/store/memory"
	catalogmemory "certflow/internal/catalog/store/memory"
	prefmemory "certflow/internal/preferences/store/memory"
	profilememory "certflow/internal/profile/store/memory"
	sessionmemory "certflow/internal/wizard/store/session/memory"
	id "certflow/pkg/domain"
	"certflow/pkg/platform/audit/mocks"
	"certflow/pkg/requestcontext"
)

// A broken audit sink must never fail the wizard.
func TestSubmitSucceedsWhenAuditEmitFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mocks.NewMockPublisher(ctrl)
	pub.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("sink down")).AnyTimes()

	svc := NewService(
		sessionmemory.NewInMemoryStore(),
		prefmemory.NewInMemoryStore(),
		profilememory.NewInMemoryStore(),
		catalogmemory.NewSeededStore(),
		appmemory.NewInMemoryStore(),
		WithAuditPublisher(pub),
	)

	ctx := requestcontext.WithUserID(t.Context(), id.UserID(uuid.New()))
	ctx = requestcontext.WithTime(ctx, testTime)

	_, err := svc.UpdateForm(ctx, completeForm())
	require.NoError(t, err)

	result, err := svc.Submit(ctx)
	require.NoError(t, err)
	require.True(t, result.Submitted)
}
