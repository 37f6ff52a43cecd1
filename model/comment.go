package model

import "time"

type CommentStatus string

const (
	CommentActive  CommentStatus = "ACTIVE"
	CommentDeleted CommentStatus = "DELETED"
)

type Comment struct {
	Id           string        `json:"id"`
	CreatedAt    time.Time     `json:"createTime"`
	ModifiedDate *time.Time    `json:"modifiedDate"`
	DeleteDate   *time.Time    `json:"deleteDate"`
	Status       CommentStatus `json:"status"`
	Content      string        `json:"content"`
	AuthorId     string        `json:"authorId"`
	Author       string        `json:"author"`
	PostId       string        `json:"postId"`
	ParentId     *string       `json:"parentId"`
	SubComments  int           `json:"subComments"`
}

func (c *Comment) IsDeleted() bool {
	return c.Status == CommentDeleted
}

func (c *Comment) IsAuthor(userId string) bool {
	return c.AuthorId == userId
}

type CommentTree struct {
	*Comment
	Children []*CommentTree `json:"children"`
}

// BuildCommentForest nests comments under rootId using their parent pointers.
// Comments that cannot reach rootId are dropped.
func BuildCommentForest(rootId string, comments []*Comment) []*CommentTree {
	adj := make(map[string][]*Comment)
	for _, comment := range comments {
		if comment.ParentId == nil {
			continue
		}
		adj[*comment.ParentId] = append(adj[*comment.ParentId], comment)
	}
	return buildCommentForestFromAdjList(adj, rootId, map[string]bool{rootId: true})
}

func buildCommentForestFromAdjList(adj map[string][]*Comment, rootId string, seen map[string]bool) []*CommentTree {
	comments, ok := adj[rootId]
	if !ok {
		return []*CommentTree{}
	}
	forest := make([]*CommentTree, 0, len(comments))
	for _, comment := range comments {
		if seen[comment.Id] {
			continue
		}
		seen[comment.Id] = true
		forest = append(forest, &CommentTree{
			Comment:  comment,
			Children: buildCommentForestFromAdjList(adj, comment.Id, seen),
		})
	}
	return forest
}
