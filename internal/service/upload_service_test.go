package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shiksha/internal/config"
	"shiksha/internal/domain"
	"shiksha/internal/extract"
	"shiksha/internal/service"
	"shiksha/mocks"
)

type uploadFixture struct {
	fileRepo  *mocks.MockFileMetaRepo
	topicRepo *mocks.MockTopicRepo
	storage   *mocks.MockObjectStorage
	svc       service.UploadService
}

func newUploadFixture() *uploadFixture {
	f := &uploadFixture{
		fileRepo:  new(mocks.MockFileMetaRepo),
		topicRepo: new(mocks.MockTopicRepo),
		storage:   new(mocks.MockObjectStorage),
	}
	cfg := &config.S3Config{Bucket: "shiksha-test", PresignExpiry: 900}
	f.svc = service.NewUploadService(f.fileRepo, f.topicRepo, f.storage, extract.New(extract.Config{}), cfg)
	return f
}

func TestUploadService_Upload_ForbiddenForStudents(t *testing.T) {
	f := newUploadFixture()

	_, err := f.svc.Upload(context.Background(), service.UploadTopicFileInput{
		SchoolID: uuid.New(),
		TopicID:  uuid.New(),
		Role:     domain.RoleStudent,
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.topicRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadService_Upload_RejectsNonPDFBeforePersisting(t *testing.T) {
	f := newUploadFixture()
	schoolID := uuid.New()
	topicID := uuid.New()
	f.topicRepo.On("GetByID", mock.Anything, schoolID, topicID).
		Return(&domain.Topic{ID: topicID, SchoolID: schoolID}, nil)

	_, err := f.svc.Upload(context.Background(), service.UploadTopicFileInput{
		SchoolID:    schoolID,
		TopicID:     topicID,
		Role:        domain.RoleTeacher,
		FileName:    "notes.docx",
		ContentType: "application/msword",
		Data:        []byte("not a pdf"),
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	f.fileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadService_Upload_GarbagePDFNeverStored(t *testing.T) {
	f := newUploadFixture()
	schoolID := uuid.New()
	topicID := uuid.New()
	f.topicRepo.On("GetByID", mock.Anything, schoolID, topicID).
		Return(&domain.Topic{ID: topicID, SchoolID: schoolID}, nil)

	_, err := f.svc.Upload(context.Background(), service.UploadTopicFileInput{
		SchoolID:    schoolID,
		TopicID:     topicID,
		Role:        domain.RoleTeacher,
		FileName:    "broken.pdf",
		ContentType: domain.PDFContentType,
		Data:        []byte("%PDF-1.4 garbage"),
	})

	require.Error(t, err)
	f.fileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadService_ExtractBatch_ReportsPerFileFailures(t *testing.T) {
	f := newUploadFixture()

	res, err := f.svc.ExtractBatch(context.Background(), []service.BatchFileInput{
		{FileName: "notes.txt", ContentType: "text/plain", Data: []byte("hello")},
	}, nil)

	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, domain.FileStatusError, res.Files[0].Status)
	assert.NotEmpty(t, res.Files[0].Error)
	assert.Empty(t, res.CombinedText)
}

func TestUploadService_GetDownloadURL_PresignsStoredKey(t *testing.T) {
	f := newUploadFixture()
	schoolID := uuid.New()
	fileID := uuid.New()
	meta := &domain.FileMeta{ID: fileID, SchoolID: schoolID, S3Key: "schools/x/topics/y/z"}

	f.fileRepo.On("GetByID", mock.Anything, schoolID, fileID).Return(meta, nil)
	f.storage.On("GetPresignedURL", mock.Anything, meta.S3Key, int64(900)).
		Return("https://signed.example.test/z", nil)

	url, err := f.svc.GetDownloadURL(context.Background(), schoolID, fileID)

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.test/z", url)
}

func TestUploadService_Delete_RemovesObjectThenMetadata(t *testing.T) {
	f := newUploadFixture()
	schoolID := uuid.New()
	fileID := uuid.New()
	meta := &domain.FileMeta{ID: fileID, SchoolID: schoolID, S3Key: "schools/x/topics/y/z"}

	f.fileRepo.On("GetByID", mock.Anything, schoolID, fileID).Return(meta, nil)
	f.storage.On("Delete", mock.Anything, meta.S3Key).Return(nil)
	f.fileRepo.On("Delete", mock.Anything, schoolID, fileID).Return(nil)

	err := f.svc.Delete(context.Background(), schoolID, fileID, domain.RoleAdmin)

	require.NoError(t, err)
	f.storage.AssertExpectations(t)
	f.fileRepo.AssertExpectations(t)
}

func TestUploadService_Delete_ForbiddenForParents(t *testing.T) {
	f := newUploadFixture()

	err := f.svc.Delete(context.Background(), uuid.New(), uuid.New(), domain.RoleParent)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
