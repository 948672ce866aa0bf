package parser

import (
	"errors"

	"github.com/MKhiriev/lumina-sync/models"
)

// ParseNote extracts a single note from a create, update or get response.
func ParseNote(body []byte) (models.RemoteNote, error) {
	v, err := decode(body)
	if err != nil {
		return models.RemoteNote{}, err
	}

	obj, err := noteShape.findEntity(v)
	if err != nil {
		return models.RemoteNote{}, err
	}

	return buildNote(obj)
}

// ParseNoteList extracts every note from a list response. Elements that
// cannot be read are skipped and their errors reported in the result.
func ParseNoteList(body []byte) (List[models.RemoteNote], error) {
	v, err := decode(body)
	if err != nil {
		return List[models.RemoteNote]{}, err
	}

	arr, err := noteShape.findList(v)
	if err != nil {
		return List[models.RemoteNote]{}, err
	}

	return collect(arr, buildNote), nil
}

func buildNote(obj object) (models.RemoteNote, error) {
	var (
		n    models.RemoteNote
		errs []error
		err  error
	)

	n.ID, err = idField(obj, "id", "noteId")
	errs = append(errs, err)
	n.Title, err = stringField(obj, "title")
	errs = append(errs, err)
	n.Content, err = stringField(obj, "content")
	errs = append(errs, err)
	n.Subject, err = stringField(obj, "subject")
	errs = append(errs, err)
	n.CategoryID, err = stringField(obj, "categoryId", "category_id")
	errs = append(errs, err)
	n.Tags, err = stringsField(obj, "tags")
	errs = append(errs, err)
	n.UserID, err = idField(obj, "userId", "user_id", "user")
	errs = append(errs, err)
	n.CreatedAt, err = timeField(obj, "createdDate", "createdAt", "created_at")
	errs = append(errs, err)
	n.UpdatedAt, err = timeField(obj, "lastModifiedDate", "updatedAt", "updated_at")
	errs = append(errs, err)
	n.Shared, err = boolField(obj, "shared", "isShared")
	errs = append(errs, err)
	n.Attachments, err = stringsField(obj, "attachmentPaths", "attachments")
	errs = append(errs, err)

	if err = errors.Join(errs...); err != nil {
		return models.RemoteNote{}, err
	}
	return n, nil
}
