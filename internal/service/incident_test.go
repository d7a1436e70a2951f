package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/domain"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/service"
	"github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/pkg/e"

	mock_service "github.com/ankita1477/Suraksha-Yatra-SIH25-sub001/internal/service/mocks"
)

func officer() domain.Actor { return domain.Actor{ID: uuid.New(), Role: domain.RoleOfficer} }

func newIncidentService(ctrl *gomock.Controller) (*service.IncidentService, *mock_service.MockIncidentRepository, *mock_service.MockPanicAlertRepository, *mock_service.MockPublisher) {
	repo := mock_service.NewMockIncidentRepository(ctrl)
	panics := mock_service.NewMockPanicAlertRepository(ctrl)
	pub := mock_service.NewMockPublisher(ctrl)
	return service.NewIncidentService(testLogger(), repo, panics, pub), repo, panics, pub
}

func TestAcknowledge_ForbiddenForPlainUsers(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newIncidentService(ctrl)

	actor := domain.Actor{ID: uuid.New(), Role: domain.RoleUser}
	_, err := svc.Acknowledge(context.Background(), uuid.New(), actor)
	if !errors.Is(err, e.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAcknowledge_OpenIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, pub := newIncidentService(ctrl)
	id := uuid.New()

	open := &domain.Incident{ID: id, Status: domain.IncidentOpen}
	acked := &domain.Incident{ID: id, Status: domain.IncidentAcknowledged}

	repo.EXPECT().Get(gomock.Any(), id).Return(open, nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.IncidentOpen, domain.IncidentAcknowledged).
		Return(acked, nil)
	pub.EXPECT().Publish(domain.TopicIncident, acked)

	got, err := svc.Acknowledge(context.Background(), id, officer())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.IncidentAcknowledged {
		t.Fatalf("unexpected status %q", got.Status)
	}
}

func TestAcknowledge_ResolvedIncidentIsInvalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newIncidentService(ctrl)
	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(&domain.Incident{ID: id, Status: domain.IncidentResolved}, nil)

	_, err := svc.Acknowledge(context.Background(), id, officer())
	if !errors.Is(err, e.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestResolve_AcknowledgedIncident(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, pub := newIncidentService(ctrl)
	id := uuid.New()

	acked := &domain.Incident{ID: id, Status: domain.IncidentAcknowledged}
	resolved := &domain.Incident{ID: id, Status: domain.IncidentResolved}

	repo.EXPECT().Get(gomock.Any(), id).Return(acked, nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.IncidentAcknowledged, domain.IncidentResolved).
		Return(resolved, nil)
	pub.EXPECT().Publish(domain.TopicIncident, resolved)

	got, err := svc.Resolve(context.Background(), id, officer())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != domain.IncidentResolved {
		t.Fatalf("unexpected status %q", got.Status)
	}
}

func TestAcknowledge_LostRaceReportsInvalidTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newIncidentService(ctrl)
	id := uuid.New()

	// First read sees open; a concurrent resolve wins the CAS.
	repo.EXPECT().Get(gomock.Any(), id).Return(&domain.Incident{ID: id, Status: domain.IncidentOpen}, nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), id, domain.IncidentOpen, domain.IncidentAcknowledged).
		Return(nil, e.ErrConflict)
	repo.EXPECT().Get(gomock.Any(), id).Return(&domain.Incident{ID: id, Status: domain.IncidentResolved}, nil)

	_, err := svc.Acknowledge(context.Background(), id, officer())
	if !errors.Is(err, e.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAcknowledge_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newIncidentService(ctrl)
	id := uuid.New()

	repo.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound)

	_, err := svc.Acknowledge(context.Background(), id, officer())
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAcknowledgePanicAlert_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, panics, pub := newIncidentService(ctrl)
	id := uuid.New()
	actor := officer()

	acked := &domain.PanicAlert{ID: id, Acknowledged: true, AcknowledgedBy: &actor.ID}

	panics.EXPECT().Acknowledge(gomock.Any(), id, actor.ID).Return(acked, nil)
	pub.EXPECT().Publish(domain.TopicPanicAlert, acked)

	got, err := svc.AcknowledgePanicAlert(context.Background(), id, actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Acknowledged {
		t.Fatal("alert must be acknowledged")
	}
}

func TestAcknowledgePanicAlert_AlreadyAcknowledged(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, panics, _ := newIncidentService(ctrl)
	id := uuid.New()
	actor := officer()

	panics.EXPECT().Acknowledge(gomock.Any(), id, actor.ID).Return(nil, e.ErrConflict)
	panics.EXPECT().Get(gomock.Any(), id).Return(&domain.PanicAlert{ID: id, Acknowledged: true}, nil)

	_, err := svc.AcknowledgePanicAlert(context.Background(), id, actor)
	if !errors.Is(err, e.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestAcknowledgePanicAlert_Missing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, panics, _ := newIncidentService(ctrl)
	id := uuid.New()
	actor := officer()

	panics.EXPECT().Acknowledge(gomock.Any(), id, actor.ID).Return(nil, e.ErrConflict)
	panics.EXPECT().Get(gomock.Any(), id).Return(nil, e.ErrNotFound)

	_, err := svc.AcknowledgePanicAlert(context.Background(), id, actor)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_CapsAreRepoConcern(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _, _ := newIncidentService(ctrl)

	filter := domain.IncidentFilter{Status: domain.IncidentOpen, Limit: 10}
	want := []*domain.Incident{{ID: uuid.New(), Status: domain.IncidentOpen}}

	repo.EXPECT().List(gomock.Any(), filter).Return(want, nil)

	got, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected result: %+v", got)
	}
}
