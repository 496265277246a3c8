package digest

import (
	"testing"

	"github.com/fachebot/ko-digest-bot/internal/ent"
	"github.com/fachebot/ko-digest-bot/internal/ent/knowledgeobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLinkHierarchy_FullChain(t *testing.T) {
	publisher := &ent.KnowledgeObject{
		ID:    uuid.MustParse("cccccccc-cccc-cccc-cccc-cccccccccccc"),
		Title: "发行方",
	}
	parent := &ent.KnowledgeObject{
		ID:    uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
		Title: "父级节目",
	}
	parent.Edges.Parent = publisher

	ko := &ent.KnowledgeObject{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		KoType: knowledgeobject.KoTypeEpisode,
		Title:  "单集",
	}
	ko.Edges.Parent = parent

	result := &SummaryJSON{
		OneLiners: []OneLiner{
			{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "episode"},
		},
	}
	LinkHierarchy(result, []*ent.KnowledgeObject{ko})

	assert.Equal(t, "父级节目", result.OneLiners[0].Parent)
	assert.Equal(t, "发行方", result.OneLiners[0].Publisher)
}

func TestLinkHierarchy_NoGrandparent(t *testing.T) {
	parent := &ent.KnowledgeObject{
		ID:    uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
		Title: "父级节目",
	}
	ko := &ent.KnowledgeObject{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		KoType: knowledgeobject.KoTypeEpisode,
		Title:  "单集",
	}
	ko.Edges.Parent = parent

	result := &SummaryJSON{
		OneLiners: []OneLiner{
			{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "episode"},
		},
	}
	LinkHierarchy(result, []*ent.KnowledgeObject{ko})

	assert.Equal(t, "父级节目", result.OneLiners[0].Parent)
	assert.Empty(t, result.OneLiners[0].Publisher)
}

func TestLinkHierarchy_NoParent(t *testing.T) {
	ko := &ent.KnowledgeObject{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		KoType: knowledgeobject.KoTypeArticle,
		Title:  "独立文章",
	}

	result := &SummaryJSON{
		OneLiners: []OneLiner{
			{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "article"},
		},
	}
	LinkHierarchy(result, []*ent.KnowledgeObject{ko})

	assert.Empty(t, result.OneLiners[0].Parent)
	assert.Empty(t, result.OneLiners[0].Publisher)
}

func TestLinkHierarchy_TypeMustMatch(t *testing.T) {
	parent := &ent.KnowledgeObject{
		ID:    uuid.MustParse("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
		Title: "父级",
	}
	ko := &ent.KnowledgeObject{
		ID:     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		KoType: knowledgeobject.KoTypeEpisode,
		Title:  "单集",
	}
	ko.Edges.Parent = parent

	result := &SummaryJSON{
		OneLiners: []OneLiner{
			{Text: "x", UUID: "11111111-1111-1111-1111-111111111111", Type: "article"},
		},
	}
	LinkHierarchy(result, []*ent.KnowledgeObject{ko})

	assert.Empty(t, result.OneLiners[0].Parent)
}

func TestLinkHierarchy_NilResult(t *testing.T) {
	assert.NotPanics(t, func() {
		LinkHierarchy(nil, nil)
	})
}

func TestLinkHierarchy_UnknownUUIDIgnored(t *testing.T) {
	result := &SummaryJSON{
		OneLiners: []OneLiner{
			{Text: "x", UUID: "99999999-9999-9999-9999-999999999999", Type: "episode"},
		},
	}
	assert.NotPanics(t, func() {
		LinkHierarchy(result, []*ent.KnowledgeObject{})
	})
	assert.Empty(t, result.OneLiners[0].Parent)
}
