package content

import (
	"verdanta/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Per-entity normalizers. Each one is total: every declared view-model
// field is defined after the call, whatever the raw record looked like.

func NormalizeTeamMember(m bson.M) models.TeamMemberView {
	return models.TeamMemberView{
		ID:        idField(m),
		Name:      stringField(m, "name", ""),
		Role:      stringField(m, "role", ""),
		Bio:       stringField(m, "bio", ""),
		PhotoURL:  stringField(m, "photoUrl", ""),
		Order:     intField(m, "order", 0),
		CreatedAt: timeFieldOrZero(m, "createdAt"),
	}
}

func NormalizeCareer(m bson.M) models.CareerView {
	return models.CareerView{
		ID:           idField(m),
		Title:        stringField(m, "title", ""),
		Department:   stringField(m, "department", ""),
		Location:     stringField(m, "location", ""),
		Type:         stringField(m, "type", "full-time"),
		Description:  stringField(m, "description", ""),
		Requirements: stringSliceField(m, "requirements"),
		CreatedAt:    timeFieldOrZero(m, "createdAt"),
	}
}

func NormalizeInternship(m bson.M) models.InternshipView {
	return models.InternshipView{
		ID:           idField(m),
		Title:        stringField(m, "title", ""),
		Duration:     stringField(m, "duration", ""),
		Description:  stringField(m, "description", ""),
		Requirements: stringSliceField(m, "requirements"),
		CreatedAt:    timeFieldOrZero(m, "createdAt"),
	}
}

func NormalizeEcoPhoto(m bson.M) models.EcoPhotoView {
	return models.EcoPhotoView{
		ID:        idField(m),
		Title:     stringField(m, "title", ""),
		Caption:   stringField(m, "caption", ""),
		ImageURL:  stringField(m, "imageUrl", ""),
		CreatedAt: timeFieldOrZero(m, "createdAt"),
	}
}

func NormalizeProduct(m bson.M) models.ProductView {
	return models.ProductView{
		ID:          idField(m),
		Name:        stringField(m, "name", ""),
		Category:    stringField(m, "category", ""),
		Description: stringField(m, "description", ""),
		ImageURL:    stringField(m, "imageUrl", ""),
		Order:       intField(m, "order", 0),
	}
}

func NormalizeReport(m bson.M) models.ReportView {
	return models.ReportView{
		ID:        idField(m),
		Title:     stringField(m, "title", ""),
		Year:      intField(m, "year", 0),
		FileURL:   stringField(m, "fileUrl", ""),
		CreatedAt: timeFieldOrZero(m, "createdAt"),
	}
}

func NormalizeSection(m bson.M) models.SectionView {
	body := stringField(m, "body", "")
	return models.SectionView{
		ID:         idField(m),
		Page:       stringField(m, "page", ""),
		Title:      stringField(m, "title", ""),
		Body:       body,
		Paragraphs: SplitParagraphs(body),
		Order:      intField(m, "order", 0),
	}
}

func NormalizeHero(m bson.M) models.HeroView {
	return models.HeroView{
		Slug:       stringField(m, "slug", ""),
		Heading:    stringField(m, "heading", ""),
		Subheading: stringField(m, "subheading", ""),
		ImageURL:   stringField(m, "imageUrl", ""),
	}
}

func NormalizeContactSettings(m bson.M) models.ContactSettingsView {
	return models.ContactSettingsView{
		Address:     stringField(m, "address", ""),
		Phone:       stringField(m, "phone", ""),
		Email:       stringField(m, "email", ""),
		MapEmbedURL: stringField(m, "mapEmbedUrl", ""),
		Hours:       stringField(m, "hours", "Mon - Fri, 8am - 5pm"),
	}
}

func NormalizeFooter(m bson.M) models.FooterView {
	return models.FooterView{
		Tagline:   stringField(m, "tagline", ""),
		Facebook:  stringField(m, "facebook", ""),
		Instagram: stringField(m, "instagram", ""),
		LinkedIn:  stringField(m, "linkedin", ""),
	}
}
