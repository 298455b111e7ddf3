package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VSP7988/maranatha-api/domain/ports"
)

func TestAuditFlagsUnreferencedObjects(t *testing.T) {
	store := &fakeStorage{objects: map[string][]ports.ObjectInfo{
		"images": {
			{Key: "banners/1-aaa.jpg", Size: 100},
			{Key: "banners/2-bbb.jpg", Size: 200},
			{Key: "gallery/3-ccc.jpg", Size: 300},
		},
	}}

	audit := NewStorageAuditService(store, []string{"images"})
	audit.AddSource(MediaSource{
		Category: "banner",
		URLs: func(context.Context) ([]string, error) {
			return []string{store.PublicURL("images", "banners/1-aaa.jpg")}, nil
		},
	})

	reports := audit.Run(context.Background())
	require.Len(t, reports, 1)
	assert.Equal(t, 3, reports[0].Objects)
	assert.Equal(t, 2, reports[0].Orphans)
	assert.Equal(t, int64(500), reports[0].OrphanBytes)
}

func TestAuditSkipsPassWhenSourceFails(t *testing.T) {
	store := &fakeStorage{objects: map[string][]ports.ObjectInfo{
		"images": {{Key: "banners/1-aaa.jpg", Size: 100}},
	}}

	audit := NewStorageAuditService(store, []string{"images"})
	audit.AddSource(MediaSource{
		Category: "banner",
		URLs: func(context.Context) ([]string, error) {
			return nil, errors.New("db down")
		},
	})

	// A partial reference set would mislabel live objects as orphans,
	// so the pass aborts entirely.
	assert.Nil(t, audit.Run(context.Background()))
}

func TestAuditCleanBucket(t *testing.T) {
	store := &fakeStorage{objects: map[string][]ports.ObjectInfo{
		"pdfs": {{Key: "events/1-aaa.pdf", Size: 50}},
	}}

	audit := NewStorageAuditService(store, []string{"pdfs"})
	audit.AddSource(MediaSource{
		Category: "event",
		URLs: func(context.Context) ([]string, error) {
			return []string{store.PublicURL("pdfs", "events/1-aaa.pdf")}, nil
		},
	})

	reports := audit.Run(context.Background())
	require.Len(t, reports, 1)
	assert.Zero(t, reports[0].Orphans)
}
