package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/promoter-portal-api/internal/domain/curation"
	"github.com/gravadigital/promoter-portal-api/internal/domain/photo"
	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
)

type fakePhotoRepo struct {
	rows map[uuid.UUID]*photo.Photo
}

func (f *fakePhotoRepo) Create(p *photo.Photo) error { f.rows[p.ID] = p; return nil }
func (f *fakePhotoRepo) GetByID(id string) (*photo.Photo, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	p, ok := f.rows[parsed]
	if !ok {
		return nil, errors.New("photo not found")
	}
	return p, nil
}
func (f *fakePhotoRepo) GetRecent(eventFilter string, limit int) ([]*photo.Photo, error) {
	panic("not used")
}
func (f *fakePhotoRepo) GetByIDs(ids []uuid.UUID) ([]*photo.Photo, error) {
	var out []*photo.Photo
	for _, id := range ids {
		if p, ok := f.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePhotoRepo) Delete(id string) error { delete(f.rows, uuid.MustParse(id)); return nil }

type fakeReportingRepo struct {
	rows  map[uuid.UUID]*reporting.Reporting
	order []uuid.UUID
}

func (f *fakeReportingRepo) Create(r *reporting.Reporting) error {
	f.rows[r.ID] = r
	f.order = append(f.order, r.ID)
	return nil
}

func (f *fakeReportingRepo) GetByID(id string) (*reporting.Reporting, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	r, ok := f.rows[parsed]
	if !ok {
		return nil, errors.New("reporting not found")
	}
	return r, nil
}

// GetRecent mirrors the real newest-first, capped, optionally filtered read.
func (f *fakeReportingRepo) GetRecent(eventFilter string, limit int) ([]*reporting.Reporting, error) {
	var out []*reporting.Reporting
	for i := len(f.order) - 1; i >= 0 && len(out) < limit; i-- {
		r := f.rows[f.order[i]]
		if eventFilter != "all" && r.EventID.String() != eventFilter {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeReportingRepo) GetByIDs(ids []uuid.UUID) ([]*reporting.Reporting, error) {
	var out []*reporting.Reporting
	for _, id := range ids {
		if r, ok := f.rows[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReportingRepo) UpdateAnswers(id string, answers map[string]any) error {
	panic("not used")
}
func (f *fakeReportingRepo) Delete(id string) error { panic("not used") }

type fakeCurationRepo struct {
	photos     map[uuid.UUID]*curation.AcceptedPhoto
	reportings map[uuid.UUID]*curation.AcceptedReporting
}

func newFakeCurationRepo() *fakeCurationRepo {
	return &fakeCurationRepo{
		photos:     make(map[uuid.UUID]*curation.AcceptedPhoto),
		reportings: make(map[uuid.UUID]*curation.AcceptedReporting),
	}
}

func (f *fakeCurationRepo) AcceptPhotos(rows []*curation.AcceptedPhoto) (int64, error) {
	var inserted int64
	for _, row := range rows {
		if _, exists := f.photos[row.PhotoID]; exists {
			continue
		}
		f.photos[row.PhotoID] = row
		inserted++
	}
	return inserted, nil
}

func (f *fakeCurationRepo) AcceptReportings(rows []*curation.AcceptedReporting) (int64, error) {
	var inserted int64
	for _, row := range rows {
		if _, exists := f.reportings[row.ReportingID]; exists {
			continue
		}
		f.reportings[row.ReportingID] = row
		inserted++
	}
	return inserted, nil
}

func (f *fakeCurationRepo) GetPublishedEventIDs() ([]uuid.UUID, error) { panic("not used") }
func (f *fakeCurationRepo) GetAcceptedPhotos(eventID string) ([]*photo.Photo, error) {
	panic("not used")
}
func (f *fakeCurationRepo) GetAcceptedReportings(eventID string) ([]*reporting.Reporting, error) {
	panic("not used")
}

func seedCurationFixtures(t *testing.T, eventID uuid.UUID, photoCount, reportingCount int) (*fakePhotoRepo, *fakeReportingRepo, []string, []string) {
	t.Helper()

	photoRepo := &fakePhotoRepo{rows: make(map[uuid.UUID]*photo.Photo)}
	reportingRepo := &fakeReportingRepo{rows: make(map[uuid.UUID]*reporting.Reporting)}

	var photoIDs, reportingIDs []string
	for i := 0; i < photoCount; i++ {
		p := photo.NewPhoto(eventID, "somewhere")
		require.NoError(t, photoRepo.Create(p))
		photoIDs = append(photoIDs, p.ID.String())
	}
	for i := 0; i < reportingCount; i++ {
		r := reporting.NewReporting(eventID, map[string]any{reporting.AnswerPromoterName: "Anna"})
		require.NoError(t, reportingRepo.Create(r))
		reportingIDs = append(reportingIDs, r.ID.String())
	}

	return photoRepo, reportingRepo, photoIDs, reportingIDs
}

func TestAcceptInsertsRowForEachItem(t *testing.T) {
	eventID := uuid.New()
	photoRepo, reportingRepo, photoIDs, reportingIDs := seedCurationFixtures(t, eventID, 3, 2)
	curationRepo := newFakeCurationRepo()

	svc := NewCurationService(photoRepo, reportingRepo, curationRepo)

	result, err := svc.Accept(photoIDs, reportingIDs)
	require.NoError(t, err)

	assert.EqualValues(t, 3, result.PhotosAccepted)
	assert.EqualValues(t, 2, result.ReportingsAccepted)
	assert.Empty(t, result.UnresolvedIDs)
	assert.Len(t, curationRepo.photos, 3)
	assert.Len(t, curationRepo.reportings, 2)
}

func TestAcceptDerivesEventFromStoredRow(t *testing.T) {
	eventID := uuid.New()
	photoRepo, reportingRepo, photoIDs, _ := seedCurationFixtures(t, eventID, 1, 0)
	curationRepo := newFakeCurationRepo()

	svc := NewCurationService(photoRepo, reportingRepo, curationRepo)

	_, err := svc.Accept(photoIDs, nil)
	require.NoError(t, err)

	for _, row := range curationRepo.photos {
		assert.Equal(t, eventID, row.EventID)
	}
}

func TestAcceptReportsUnresolvedIDs(t *testing.T) {
	eventID := uuid.New()
	photoRepo, reportingRepo, photoIDs, _ := seedCurationFixtures(t, eventID, 1, 0)
	curationRepo := newFakeCurationRepo()

	svc := NewCurationService(photoRepo, reportingRepo, curationRepo)

	missing := uuid.New().String()
	result, err := svc.Accept(append(photoIDs, missing, "not-a-uuid"), nil)
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.PhotosAccepted)
	assert.ElementsMatch(t, []string{missing, "not-a-uuid"}, result.UnresolvedIDs)
}

func TestAcceptTwiceIsIdempotent(t *testing.T) {
	eventID := uuid.New()
	photoRepo, reportingRepo, photoIDs, reportingIDs := seedCurationFixtures(t, eventID, 2, 1)
	curationRepo := newFakeCurationRepo()

	svc := NewCurationService(photoRepo, reportingRepo, curationRepo)

	first, err := svc.Accept(photoIDs, reportingIDs)
	require.NoError(t, err)
	assert.EqualValues(t, 2, first.PhotosAccepted)

	second, err := svc.Accept(photoIDs, reportingIDs)
	require.NoError(t, err)
	assert.EqualValues(t, 0, second.PhotosAccepted)
	assert.EqualValues(t, 2, second.PhotosSkipped)
	assert.EqualValues(t, 0, second.ReportingsAccepted)
	assert.EqualValues(t, 1, second.ReportingsSkipped)
	assert.Len(t, curationRepo.photos, 2)
}

func TestAcceptDeduplicatesRequestIDs(t *testing.T) {
	eventID := uuid.New()
	photoRepo, reportingRepo, photoIDs, _ := seedCurationFixtures(t, eventID, 1, 0)
	curationRepo := newFakeCurationRepo()

	svc := NewCurationService(photoRepo, reportingRepo, curationRepo)

	result, err := svc.Accept([]string{photoIDs[0], photoIDs[0], photoIDs[0]}, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 1, result.PhotosAccepted)
	assert.EqualValues(t, 0, result.PhotosSkipped)
}
