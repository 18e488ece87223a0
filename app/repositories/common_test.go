package repositories

import (
	"testing"
	"time"

	"blogcomments/app/models"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, []byte("blog:b1"), blogKey("b1"))
	assert.Equal(t, []byte("comment:c1"), commentKey("c1"))
	assert.Equal(t, []byte("idx:blog_comments:b1:"), blogCommentsPrefix("b1"))
	assert.Equal(t, []byte("idx:blog_comments:b1:c1"), blogCommentIndexKey("b1", "c1"))
}

func TestMarshalEntity(t *testing.T) {
	t.Run("marshal blog", func(t *testing.T) {
		blog := &models.Blog{
			ID:       "b1",
			Title:    "Test Blog",
			Content:  "Test Content",
			Comments: 3,
		}

		data, err := marshalEntity(blog)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		var unmarshaled models.Blog
		err = unmarshalEntity(data, &unmarshaled)
		assert.NoError(t, err)
		assert.Equal(t, blog.ID, unmarshaled.ID)
		assert.Equal(t, blog.Title, unmarshaled.Title)
		assert.Equal(t, 3, unmarshaled.Comments)
	})

	t.Run("marshal invalid entity", func(t *testing.T) {
		invalidEntity := struct {
			Ch chan int
		}{
			Ch: make(chan int),
		}

		_, err := marshalEntity(invalidEntity)
		assert.Error(t, err)
	})
}

func TestUnmarshalEntity(t *testing.T) {
	t.Run("unmarshal comment", func(t *testing.T) {
		data := []byte(`{"id":"c1","blogId":"b1","createdBy":"u1","content":"Test Content"}`)
		var comment models.Comment
		err := unmarshalEntity(data, &comment)
		assert.NoError(t, err)
		assert.Equal(t, "c1", comment.ID)
		assert.Equal(t, "b1", comment.BlogID)
		assert.Equal(t, "u1", comment.CreatedBy)
		assert.Equal(t, "Test Content", comment.Content)
	})

	t.Run("unmarshal invalid JSON", func(t *testing.T) {
		data := []byte(`{"id":1,invalid json}`)
		var comment models.Comment
		err := unmarshalEntity(data, &comment)
		assert.Error(t, err)
	})

	t.Run("unmarshal into nil", func(t *testing.T) {
		data := []byte(`{"id":"c1"}`)
		err := unmarshalEntity(data, nil)
		assert.Error(t, err)
	})
}

func TestSortNewestFirst(t *testing.T) {
	now := time.Now()
	comments := []*models.Comment{
		{ID: "a", CreatedAt: now.Add(-time.Minute)},
		{ID: "b", CreatedAt: now},
		{ID: "c", CreatedAt: now},
		{ID: "d", CreatedAt: now.Add(-time.Hour)},
	}

	SortNewestFirst(comments)

	var ids []string
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c", "b", "a", "d"}, ids)
}
