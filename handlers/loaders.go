package handlers

import (
	"context"

	contentRepo "verdanta/database/repository/content"
	"verdanta/models"
	"verdanta/services/content"

	"go.mongodb.org/mongo-driver/bson"
)

// Loader constructors, one per content source. Each page handler assembles
// the sources it needs from these.

func (h *PageHandler) listFetch(collection string) content.FetchAll {
	return func(ctx context.Context) ([]bson.M, error) {
		return h.Repo.ListAll(ctx, collection)
	}
}

func (h *PageHandler) heroLoader(slug string) content.SingletonLoader[models.HeroView] {
	return content.SingletonLoader[models.HeroView]{
		Name: "hero:" + slug,
		Fetch: func(ctx context.Context) (bson.M, error) {
			return h.Repo.GetBySlug(ctx, contentRepo.CollectionPages, slug)
		},
		Normalize: content.NormalizeHero,
	}
}

func (h *PageHandler) contactSettingsLoader() content.SingletonLoader[models.ContactSettingsView] {
	return content.SingletonLoader[models.ContactSettingsView]{
		Name: models.SlugContactSettings,
		Fetch: func(ctx context.Context) (bson.M, error) {
			return h.Repo.GetBySlug(ctx, contentRepo.CollectionPages, models.SlugContactSettings)
		},
		Normalize: content.NormalizeContactSettings,
	}
}

func (h *PageHandler) footerLoader() content.SingletonLoader[models.FooterView] {
	return content.SingletonLoader[models.FooterView]{
		Name: models.SlugFooter,
		Fetch: func(ctx context.Context) (bson.M, error) {
			return h.Repo.GetBySlug(ctx, contentRepo.CollectionPages, models.SlugFooter)
		},
		Normalize: content.NormalizeFooter,
	}
}

func (h *PageHandler) teamLoader() content.CollectionLoader[models.TeamMemberView] {
	return content.CollectionLoader[models.TeamMemberView]{
		Name:      contentRepo.CollectionTeamMembers,
		Fetch:     h.listFetch(contentRepo.CollectionTeamMembers),
		Normalize: content.NormalizeTeamMember,
		Filter:    content.ActiveOnly,
	}
}

func (h *PageHandler) careersLoader() content.CollectionLoader[models.CareerView] {
	return content.CollectionLoader[models.CareerView]{
		Name:      contentRepo.CollectionCareers,
		Fetch:     h.listFetch(contentRepo.CollectionCareers),
		Normalize: content.NormalizeCareer,
		Filter:    content.ActiveOnly,
		Sort:      content.NewestFirst("createdAt"),
	}
}

func (h *PageHandler) internshipsLoader() content.CollectionLoader[models.InternshipView] {
	return content.CollectionLoader[models.InternshipView]{
		Name:      contentRepo.CollectionInternships,
		Fetch:     h.listFetch(contentRepo.CollectionInternships),
		Normalize: content.NormalizeInternship,
		Filter:    content.ActiveOnly,
		Sort:      content.NewestFirst("createdAt"),
	}
}

func (h *PageHandler) ecoPhotosLoader() content.CollectionLoader[models.EcoPhotoView] {
	return content.CollectionLoader[models.EcoPhotoView]{
		Name:      contentRepo.CollectionEcovillagePhotos,
		Fetch:     h.listFetch(contentRepo.CollectionEcovillagePhotos),
		Normalize: content.NormalizeEcoPhoto,
		Filter:    content.ActiveOnly,
		Sort:      content.NewestFirst("createdAt"),
	}
}

func (h *PageHandler) productsLoader() content.CollectionLoader[models.ProductView] {
	return content.CollectionLoader[models.ProductView]{
		Name:      contentRepo.CollectionProducts,
		Fetch:     h.listFetch(contentRepo.CollectionProducts),
		Normalize: content.NormalizeProduct,
		Filter:    content.ActiveOnly,
	}
}

func (h *PageHandler) reportsLoader() content.CollectionLoader[models.ReportView] {
	return content.CollectionLoader[models.ReportView]{
		Name:      contentRepo.CollectionInvestorReports,
		Fetch:     h.listFetch(contentRepo.CollectionInvestorReports),
		Normalize: content.NormalizeReport,
		Filter:    content.ActiveOnly,
		Sort:      content.NewestFirst("createdAt"),
	}
}

// sectionsLoader keeps only the sections belonging to one page. Sections
// carry no publish flag, so no active gate applies.
func (h *PageHandler) sectionsLoader(page string) content.CollectionLoader[models.SectionView] {
	return content.CollectionLoader[models.SectionView]{
		Name:      contentRepo.CollectionPageSections + ":" + page,
		Fetch:     h.listFetch(contentRepo.CollectionPageSections),
		Normalize: content.NormalizeSection,
		Filter: func(m bson.M) bool {
			v, ok := m["page"].(string)
			return ok && v == page
		},
	}
}
