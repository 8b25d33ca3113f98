package models

// Review is not translated and carries no display order.
type Review struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	LocalImage *string `gorm:"size:255" json:"local_image,omitempty"`
	ImageURL   *string `gorm:"size:255" json:"image_url,omitempty"`
	Name       string  `gorm:"size:255;not null" json:"name"`
	Comment    string  `gorm:"type:text;not null" json:"comment"`
}

func (r Review) Image() *string { return ResolveImage(r.LocalImage, r.ImageURL) }
