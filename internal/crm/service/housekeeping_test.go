package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vos-crm/crm/internal/crm/domain"
	"github.com/vos-crm/crm/pkg/slogx"
)

func TestHousekeepingExpiredInvites(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	seedInvite(t, st, "ancient@example.com", domain.RoleCustomer, now().Add(-InviteRetention-time.Hour))
	seedInvite(t, st, "recent@example.com", domain.RoleCustomer, now().Add(-time.Hour))
	fresh := seedInvite(t, st, "fresh@example.com", domain.RoleCustomer, now().Add(time.Hour))

	hk := NewHousekeepingService(st, nil, slogx.Discard(), 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.Equal(t, CleanupResult{Invites: 1}, hk.Cleanup(ctx))
	require.Equal(t, CleanupResult{}, hk.Cleanup(ctx))

	invites := &InviteService{Store: st}
	_, err := invites.ValidateInvite(ctx, fresh)
	require.NoError(t, err)
}

func TestHousekeepingOrphanedFiles(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	disk := newTestDisk(t)
	docs := &DocumentService{Store: st, Files: disk}

	c := seedCustomer(t, st, "Eva", "Smit", "eva@example.com")
	doc, err := docs.Upload(ctx, UploadInput{CustomerID: c.ID, FileName: "offerte.txt", Body: strings.NewReader("offerte")})
	require.NoError(t, err)

	_, orphan, _, err := disk.Save("los.txt", strings.NewReader("zonder rij"))
	require.NoError(t, err)
	_, young, _, err := disk.Save("bezig.txt", strings.NewReader("upload loopt nog"))
	require.NoError(t, err)

	past := time.Now().Add(-2 * OrphanGrace)
	require.NoError(t, os.Chtimes(doc.Path, past, past))
	require.NoError(t, os.Chtimes(orphan, past, past))

	hk := NewHousekeepingService(st, disk, slogx.Discard(), time.Hour)
	require.Equal(t, CleanupResult{Files: 1}, hk.Cleanup(ctx))

	_, err = os.Stat(orphan)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.FileExists(t, doc.Path)
	require.FileExists(t, young)
	require.Equal(t, disk.Dir, filepath.Dir(doc.Path))
}

func TestHousekeepingStartStop(t *testing.T) {
	st := newTestStore(t)
	hk := NewHousekeepingService(st, newTestDisk(t), slogx.Discard(), 10*time.Millisecond)
	hk.Stop()

	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}
