package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Budget struct {
	Total         float64  `bson:"total" json:"total"`
	PerInfluencer *float64 `bson:"perInfluencer,omitempty" json:"perInfluencer,omitempty"`
}

type CreatorCriteria struct {
	Niche        string `bson:"niche,omitempty" json:"niche,omitempty"`
	MinFollowers *int64 `bson:"minFollowers,omitempty" json:"minFollowers,omitempty"`
	MaxFollowers *int64 `bson:"maxFollowers,omitempty" json:"maxFollowers,omitempty"`
}

// Campaign is a brand's request for influencer promotion. CreatedBy is
// informational only; updates and deletes are gated by role.
type Campaign struct {
	ID                  primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Name                string              `bson:"name,omitempty" json:"name,omitempty"`
	Title               string              `bson:"title" json:"title"`
	Objective           string              `bson:"objective" json:"objective"`
	Images              []string            `bson:"images" json:"images"`
	Budget              Budget              `bson:"budget" json:"budget"`
	Platforms           []string            `bson:"platforms" json:"platforms"`
	Hashtags            []string            `bson:"hashtags" json:"hashtags"`
	LanguagePreferences []string            `bson:"languagePreferences" json:"languagePreferences"`
	CreatorCriteria     CreatorCriteria     `bson:"creatorCriteria" json:"creatorCriteria"`
	CreatedBy           *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt           time.Time           `bson:"createdAt" json:"createdAt"`
}

// Validate checks the fields every stored campaign must carry.
func (c *Campaign) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(c.Objective) == "" {
		missing = append(missing, "objective")
	}
	if c.Budget.Total <= 0 {
		missing = append(missing, "budget.total")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if c.Budget.PerInfluencer != nil && *c.Budget.PerInfluencer < 0 {
		return fmt.Errorf("%w: budget.perInfluencer must not be negative", ErrInvalidInput)
	}
	min, max := c.CreatorCriteria.MinFollowers, c.CreatorCriteria.MaxFollowers
	if min != nil && max != nil && *min > *max {
		return fmt.Errorf("%w: creatorCriteria.minFollowers exceeds maxFollowers", ErrInvalidInput)
	}
	return nil
}

// CampaignPatch is a partial campaign update. Nil fields are left untouched.
type CampaignPatch struct {
	Name                *string          `json:"name"`
	Title               *string          `json:"title"`
	Objective           *string          `json:"objective"`
	Images              *[]string        `json:"images"`
	Budget              *Budget          `json:"budget"`
	Platforms           *[]string        `json:"platforms"`
	Hashtags            *[]string        `json:"hashtags"`
	LanguagePreferences *[]string        `json:"languagePreferences"`
	CreatorCriteria     *CreatorCriteria `json:"creatorCriteria"`
}

// Apply copies the set fields of p onto c.
func (p CampaignPatch) Apply(c *Campaign) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Objective != nil {
		c.Objective = *p.Objective
	}
	if p.Images != nil {
		c.Images = *p.Images
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Platforms != nil {
		c.Platforms = *p.Platforms
	}
	if p.Hashtags != nil {
		c.Hashtags = *p.Hashtags
	}
	if p.LanguagePreferences != nil {
		c.LanguagePreferences = *p.LanguagePreferences
	}
	if p.CreatorCriteria != nil {
		c.CreatorCriteria = *p.CreatorCriteria
	}
}
