package imagegen

import (
	"encoding/base64"
	"net/http"

	"github.com/osse101/GatchaLife_Go/internal/domain"
)

// Request describes one artwork to generate.
type Request struct {
	Variant *domain.CharacterVariant
	Rarity  domain.Rarity
	Style   domain.Style
	Theme   domain.Theme
	Pose    string
	Config  domain.CardConfiguration
}

// Key returns the artwork identity of the request.
func (r Request) Key() domain.ImageKey {
	return domain.ImageKey{
		VariantID: r.Variant.ID,
		RarityID:  r.Rarity.ID,
		StyleID:   r.Style.ID,
		ThemeID:   r.Theme.ID,
	}
}

// EncodedImage is a base64 encoded reference picture.
type EncodedImage struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimetype"`
	Data     string `json:"data"`
}

// VariantPayload is the variant as sent to the generator.
type VariantPayload struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	VisualOverride string             `json:"visual_override"`
	VariantType    domain.VariantType `json:"variant_type"`
	Images         []EncodedImage     `json:"images"`
}

// CharacterPayload is the character as sent to the generator.
type CharacterPayload struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	SeriesName           string   `json:"series_name,omitempty"`
	BodyTypeDescription  string   `json:"body_type_description,omitempty"`
	HeightPerception     string   `json:"height_perception,omitempty"`
	LoreTags             []string `json:"lore_tags,omitempty"`
	AffinityEnvironments []string `json:"affinity_environments,omitempty"`
	ClashingEnvironments []string `json:"clashing_environments,omitempty"`
	IdentityFaceImage    string   `json:"identity_face_image,omitempty"`
}

// Payload is the body posted to the generation webhook.
type Payload struct {
	CharacterVariant  VariantPayload           `json:"character_variant"`
	Character         CharacterPayload         `json:"character"`
	Rarity            domain.Rarity            `json:"rarity"`
	Style             domain.Style             `json:"style"`
	Theme             domain.Theme             `json:"theme"`
	Pose              string                   `json:"pose"`
	CardConfiguration domain.CardConfiguration `json:"card_configuration"`
	CallbackURL       string                   `json:"callback_url,omitempty"`
	JobID             string                   `json:"job_id,omitempty"`
}

// BuildPayload serializes a request for the generator.
func BuildPayload(req Request) *Payload {
	v := req.Variant
	p := &Payload{
		CharacterVariant: VariantPayload{
			ID:             v.ID,
			Name:           v.Name,
			Description:    v.Description,
			VisualOverride: v.VisualOverride,
			VariantType:    v.VariantType,
			Images:         make([]EncodedImage, 0, len(v.ReferenceImages)),
		},
		Rarity:            req.Rarity,
		Style:             req.Style,
		Theme:             req.Theme,
		Pose:              req.Pose,
		CardConfiguration: req.Config,
	}

	for _, img := range v.ReferenceImages {
		mime := img.MimeType
		if mime == "" {
			mime = http.DetectContentType(img.Data)
		}
		p.CharacterVariant.Images = append(p.CharacterVariant.Images, EncodedImage{
			Filename: img.Filename,
			MimeType: mime,
			Data:     base64.StdEncoding.EncodeToString(img.Data),
		})
	}

	if c := v.Character; c != nil {
		p.Character = CharacterPayload{
			ID:                   c.ID,
			Name:                 c.Name,
			Description:          c.Description,
			SeriesName:           c.SeriesName,
			BodyTypeDescription:  c.BodyTypeDescription,
			HeightPerception:     c.HeightPerception,
			LoreTags:             c.LoreTags,
			AffinityEnvironments: c.AffinityEnvironments,
			ClashingEnvironments: c.ClashingEnvironments,
		}
		if len(c.IdentityFaceImage) > 0 {
			p.Character.IdentityFaceImage = base64.StdEncoding.EncodeToString(c.IdentityFaceImage)
		}
	}
	return p
}
