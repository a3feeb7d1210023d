package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/FBurak/Restaurant-Web/internal/client/models"
	"github.com/FBurak/Restaurant-Web/internal/filex"
	"github.com/FBurak/Restaurant-Web/internal/netx"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
)

// package-level seams for tests
var (
	openImage            = filex.OpenImage
	uploadToPresignedURL = netx.UploadToPresignedURL
)

// upload sends a local image through a presigned slot and returns its
// public URL. Nothing is written to the document store here.
func (s *Session) upload(ctx context.Context, kind, path string, progress io.Writer) (string, error) {
	f, err := openImage(path)
	if err != nil {
		return "", s.fail(ctx, UploadError, "open "+kind+" image", err)
	}
	defer f.Close()

	slot, err := s.client.RequestUpload(ctx, s.tenant, kind, f.Name, f.ContentType)
	if err != nil {
		return "", s.fail(ctx, UploadError, "request upload", err)
	}

	s.log.Debug(ctx, "uploading", "key", slot.Key, "size", f.Size)
	if err := uploadToPresignedURL(ctx, nil, slot.URL, f.ContentType, f.File, f.Size, progress); err != nil {
		return "", s.fail(ctx, UploadError, "upload "+f.Name, err)
	}

	url, err := s.client.FinalizeUpload(ctx, s.tenant, slot.Key)
	if err != nil {
		return "", s.fail(ctx, UploadError, "finalize upload", err)
	}
	return url, nil
}

// AddGalleryImage uploads path and appends it to the gallery with the
// currently observed item count as its sort order.
func (s *Session) AddGalleryImage(ctx context.Context, path string, progress io.Writer) (models.GalleryItem, error) {
	if !s.isOpen() {
		return models.GalleryItem{}, ErrNotOpen
	}

	url, err := s.upload(ctx, pb.UploadKindGallery, path, progress)
	if err != nil {
		return models.GalleryItem{}, err
	}

	order := len(s.Gallery())
	id, err := s.client.AppendGalleryItem(ctx, s.tenant, url, order)
	if err != nil {
		return models.GalleryItem{}, s.fail(ctx, StoreWriteError, "add gallery image", err)
	}
	s.notify.Notify(Notice{Level: LevelSuccess, Text: "Image added"})
	return models.GalleryItem{ID: id, URL: url, SortOrder: order}, nil
}

// RemoveGalleryItem deletes one gallery item. Other items keep their
// sort order.
func (s *Session) RemoveGalleryItem(ctx context.Context, id string) error {
	if err := s.client.DeleteGalleryItem(ctx, s.tenant, id); err != nil {
		return s.fail(ctx, StoreWriteError, "remove gallery image", err)
	}
	s.notify.Notify(Notice{Level: LevelSuccess, Text: "Image removed"})
	return nil
}

// AddPassword appends a default row at the observed count.
func (s *Session) AddPassword(ctx context.Context) (models.PasswordItem, error) {
	if !s.isOpen() {
		return models.PasswordItem{}, ErrNotOpen
	}

	item := models.NewPasswordItem(len(s.Passwords()))
	id, err := s.client.AppendPasswordItem(ctx, s.tenant, item)
	if err != nil {
		return models.PasswordItem{}, s.fail(ctx, StoreWriteError, "add password", err)
	}
	item.ID = id
	return item, nil
}

func (s *Session) findPassword(id string) (models.PasswordItem, error) {
	for _, it := range s.Passwords() {
		if it.ID == id {
			return it, nil
		}
	}
	return models.PasswordItem{}, fmt.Errorf("%w: %s", ErrUnknownRow, id)
}

// PasswordEditable reports whether the title and value of row id accept
// edits. Hidden rows do not.
func (s *Session) PasswordEditable(id string) bool {
	it, err := s.findPassword(id)
	return err == nil && !it.Hidden
}

func (s *Session) updatePassword(ctx context.Context, id, op string, patch models.PasswordPatch) error {
	if err := s.client.UpdatePasswordItem(ctx, s.tenant, id, patch); err != nil {
		return s.fail(ctx, StoreWriteError, op, err)
	}
	return nil
}

func (s *Session) editablePassword(id string) error {
	it, err := s.findPassword(id)
	if err != nil {
		return err
	}
	if it.Hidden {
		return ErrRowHidden
	}
	return nil
}

// SetPasswordTitle commits a new title for a visible row.
func (s *Session) SetPasswordTitle(ctx context.Context, id, title string) error {
	if err := s.editablePassword(id); err != nil {
		return err
	}
	return s.updatePassword(ctx, id, "update password title", models.PasswordPatch{Fields: []string{pb.FieldTitle}, Title: title})
}

// SetPasswordValue commits a new value for a visible row.
func (s *Session) SetPasswordValue(ctx context.Context, id, value string) error {
	if err := s.editablePassword(id); err != nil {
		return err
	}
	return s.updatePassword(ctx, id, "update password value", models.PasswordPatch{Fields: []string{pb.FieldValue}, Value: value})
}

// TogglePasswordHidden flips the hidden flag of row id.
func (s *Session) TogglePasswordHidden(ctx context.Context, id string) error {
	it, err := s.findPassword(id)
	if err != nil {
		return err
	}
	return s.updatePassword(ctx, id, "toggle password", models.PasswordPatch{Fields: []string{pb.FieldHidden}, Hidden: !it.Hidden})
}

func (s *Session) DeletePassword(ctx context.Context, id string) error {
	if err := s.client.DeletePasswordItem(ctx, s.tenant, id); err != nil {
		return s.fail(ctx, StoreWriteError, "delete password", err)
	}
	return nil
}

func (s *Session) mergeProfile(ctx context.Context, op string, patch models.ProfilePatch) error {
	if err := s.client.MergeProfile(ctx, s.tenant, patch); err != nil {
		return s.fail(ctx, StoreWriteError, op, err)
	}
	return nil
}

// SetHeaderImage uploads path and points the header at it.
func (s *Session) SetHeaderImage(ctx context.Context, path string, progress io.Writer) (string, error) {
	url, err := s.upload(ctx, pb.UploadKindHeader, path, progress)
	if err != nil {
		return "", err
	}
	patch := models.ProfilePatch{Fields: []string{pb.FieldHeaderImageURL}, HeaderImageURL: &url}
	if err := s.mergeProfile(ctx, "set header image", patch); err != nil {
		return "", err
	}
	s.notify.Notify(Notice{Level: LevelSuccess, Text: "Header image updated"})
	return url, nil
}

func (s *Session) ClearHeaderImage(ctx context.Context) error {
	return s.mergeProfile(ctx, "clear header image", models.ProfilePatch{Fields: []string{pb.FieldHeaderImageURL}})
}

// ToggleVisibility flips isVisible relative to the last delivered document.
func (s *Session) ToggleVisibility(ctx context.Context) (bool, error) {
	p := s.Profile()
	if p == nil {
		return false, ErrNotOpen
	}
	visible := !p.IsVisible
	if err := s.mergeProfile(ctx, "toggle visibility", models.ProfilePatch{Fields: []string{pb.FieldIsVisible}, IsVisible: visible}); err != nil {
		return p.IsVisible, err
	}
	return visible, nil
}

func (s *Session) SetName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	return s.mergeProfile(ctx, "set name", models.ProfilePatch{Fields: []string{pb.FieldName}, Name: name})
}
