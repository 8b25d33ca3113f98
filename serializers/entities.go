package serializers

import (
	"github.com/gekoeducation/geko-api/models"
	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

func Category(c models.Category, language *string) fiber.Map {
	resp := fiber.Map{
		"id":    c.ID,
		"image": c.Image(),
		"order": c.Order,
	}
	return Localize(resp, c.Translations, NewCategoryTranslation, language)
}

func Categories(cs []models.Category, language *string) []fiber.Map {
	out := make([]fiber.Map, 0, len(cs))
	for _, c := range cs {
		out = append(out, Category(c, language))
	}
	return out
}

func PopularCourse(p models.PopularCourse, language *string) fiber.Map {
	resp := fiber.Map{
		"id":            p.ID,
		"category":      Category(p.Category, language),
		"image":         p.Image(),
		"duration":      p.Duration,
		"certification": p.Certification,
		"students":      p.Students,
		"studentGroup":  p.StudentGroup,
		"assessments":   p.Assessments,
		"order":         p.Order,
	}
	return Localize(resp, p.Translations, NewPopularCourseTranslation, language)
}

func PopularCourses(ps []models.PopularCourse, language *string) []fiber.Map {
	out := make([]fiber.Map, 0, len(ps))
	for _, p := range ps {
		out = append(out, PopularCourse(p, language))
	}
	return out
}

func Event(e models.Event, language *string) fiber.Map {
	galleries := make([]fiber.Map, 0, len(e.EventGalleries))
	for _, g := range e.EventGalleries {
		galleries = append(galleries, EventGallery(g))
	}

	resp := fiber.Map{
		"id":              e.ID,
		"start_date":      e.StartDate.Format(dateLayout),
		"end_date":        e.EndDate.Format(dateLayout),
		"image":           e.Image,
		"status":          e.Status,
		"order":           e.Order,
		"event_galleries": galleries,
	}
	return Localize(resp, e.Translations, NewEventTranslation, language)
}

func Events(es []models.Event, language *string) []fiber.Map {
	out := make([]fiber.Map, 0, len(es))
	for _, e := range es {
		out = append(out, Event(e, language))
	}
	return out
}

func EventGallery(g models.EventGallery) fiber.Map {
	return fiber.Map{
		"id":    g.ID,
		"event": g.EventID,
		"image": g.Image(),
		"order": g.Order,
	}
}

func Team(m models.Team, language *string) fiber.Map {
	resp := fiber.Map{
		"id":    m.ID,
		"image": m.Image(),
		"order": m.Order,
	}
	return Localize(resp, m.Translations, NewTeamTranslation, language)
}

func Teams(ms []models.Team, language *string) []fiber.Map {
	out := make([]fiber.Map, 0, len(ms))
	for _, m := range ms {
		out = append(out, Team(m, language))
	}
	return out
}

func LessonInfo(l models.LessonInfo, language *string) fiber.Map {
	resp := fiber.Map{
		"id":    l.ID,
		"image": l.Image(),
		"order": l.Order,
	}
	return Localize(resp, l.Translations, NewLessonInfoTranslation, language)
}

func LessonInfos(ls []models.LessonInfo, language *string) []fiber.Map {
	out := make([]fiber.Map, 0, len(ls))
	for _, l := range ls {
		out = append(out, LessonInfo(l, language))
	}
	return out
}

func Review(r models.Review) fiber.Map {
	return fiber.Map{
		"id":      r.ID,
		"image":   r.Image(),
		"name":    r.Name,
		"comment": r.Comment,
	}
}

func Reviews(rs []models.Review) []fiber.Map {
	out := make([]fiber.Map, 0, len(rs))
	for _, r := range rs {
		out = append(out, Review(r))
	}
	return out
}
