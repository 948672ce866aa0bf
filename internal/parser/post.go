package parser

import (
	"errors"

	"github.com/MKhiriev/lumina-sync/models"
)

// ParsePost extracts a single post from a create, update or get response.
func ParsePost(body []byte) (models.RemotePost, error) {
	v, err := decode(body)
	if err != nil {
		return models.RemotePost{}, err
	}

	obj, err := postShape.findEntity(v)
	if err != nil {
		return models.RemotePost{}, err
	}

	return buildPost(obj)
}

// ParsePostList extracts every post from a list, hot or favorites response.
func ParsePostList(body []byte) (List[models.RemotePost], error) {
	v, err := decode(body)
	if err != nil {
		return List[models.RemotePost]{}, err
	}

	arr, err := postShape.findList(v)
	if err != nil {
		return List[models.RemotePost]{}, err
	}

	return collect(arr, buildPost), nil
}

func buildPost(obj object) (models.RemotePost, error) {
	var (
		p    models.RemotePost
		errs []error
		err  error
	)

	p.ID, err = idField(obj, "id", "postId")
	errs = append(errs, err)
	p.UserID, err = idField(obj, "userId", "user_id", "user")
	errs = append(errs, err)
	p.Username, err = stringField(obj, "username")
	errs = append(errs, err)
	if p.Username == nil {
		if user := nestedObject(obj, "user"); user != nil {
			p.Username, err = stringField(user, "username")
			errs = append(errs, err)
		}
	}
	p.Title, err = stringField(obj, "title", "postTitle")
	errs = append(errs, err)
	p.Content, err = stringField(obj, "content", "postContent")
	errs = append(errs, err)
	p.Subject, err = stringField(obj, "subject")
	errs = append(errs, err)
	p.CategoryID, err = stringField(obj, "categoryId", "category_id")
	errs = append(errs, err)
	p.Attachments, err = stringsField(obj, "attachmentPaths", "images", "attachments")
	errs = append(errs, err)
	p.Likes, err = idsField(obj, "likes", "likesArray")
	errs = append(errs, err)
	p.Favorites, err = idsField(obj, "favorites", "favoritesArray")
	errs = append(errs, err)
	p.LikeCount, err = intField(obj, "likeCount")
	errs = append(errs, err)
	p.FavoriteCount, err = intField(obj, "favoriteCount")
	errs = append(errs, err)
	p.CommentCount, err = intField(obj, "commentCount")
	errs = append(errs, err)
	if p.CommentCount == nil {
		if comments, ok := obj["comments"].([]any); ok {
			n := len(comments)
			p.CommentCount = &n
		}
	}
	p.ViewCount, err = intField(obj, "viewCount")
	errs = append(errs, err)
	p.CreatedAt, err = timeField(obj, "createdAt", "createTime", "created_at")
	errs = append(errs, err)
	p.UpdatedAt, err = timeField(obj, "updatedAt", "updated_at")
	errs = append(errs, err)

	if err = errors.Join(errs...); err != nil {
		return models.RemotePost{}, err
	}
	return p, nil
}
