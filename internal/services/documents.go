package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/data/repos"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/documents"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

// sectionAliases maps every known spelling of a section name onto its
// canonical form. Uploads predate this service and are not consistent.
var sectionAliases = map[string]string{
	"faculty output":                  "faculty_output",
	"faculty_output":                  "faculty_output",
	"research output":                 "faculty_output",
	"nep":                             "nep",
	"nep initiatives":                 "nep",
	"nep_initiatives":                 "nep",
	"governance":                      "governance",
	"governance and best practices":   "governance",
	"student support":                 "student_support",
	"student_support":                 "student_support",
	"student support and progression": "student_support",
	"intake":                          "student_support",
	"placement":                       "student_support",
	"conferences":                     "conf_collab",
	"collaborations":                  "conf_collab",
	"conferences and collaborations":  "conf_collab",
	"conf_collab":                     "conf_collab",
}

// keywordMap drives full-section keyword matching against document titles.
// The "ugc" and "issn" families are restricted to known title phrases: loose
// matching on those terms historically attached journal documents to the
// wrong items.
var keywordMap = map[string][]string{
	"awards":       {"award", "fellowship", "recognition"},
	"projects":     {"project", "grant", "funding", "consultancy"},
	"patents":      {"patent", "ipr"},
	"publications": {"publication", "journal", "paper", "scopus"},
	"books":        {"book", "chapter", "mooc"},
	"startups":     {"startup", "incubat"},
	"placement":    {"placement", "recruit", "offer letter"},
	"internships":  {"internship"},
	"sports":       {"sports", "tournament", "medal"},
	"cultural":     {"cultural", "fest"},
}

// restrictedTitlePhrases gates ambiguous keyword families: the keyword only
// matches when the title also contains one of these phrases.
var restrictedTitlePhrases = map[string][]string{
	"ugc":  {"ugc care list", "ugc listed journal", "ugc approved"},
	"issn": {"issn journal", "issn listed"},
}

// DocumentFilter selects documents for one item or one full section view.
type DocumentFilter struct {
	Section string
	// SerialNumber > 0 makes the match exact and exclusive: no keyword
	// fallback even when the result is empty.
	SerialNumber int
	// ProgramCode scopes program-wise sections (intake, placement).
	ProgramCode string
	// Keywords are free-text hints for full-section views.
	Keywords []string
}

type DocumentService interface {
	Match(ctx context.Context, deptID int, academicYear string, f DocumentFilter) ([]documents.SupportingDocument, error)
}

type documentService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.DocumentRepo
}

func NewDocumentService(db *gorm.DB, log *logger.Logger, repo repos.DocumentRepo) DocumentService {
	return &documentService{
		db:   db,
		log:  log.With("service", "DocumentService"),
		repo: repo,
	}
}

func (s *documentService) Match(ctx context.Context, deptID int, academicYear string, f DocumentFilter) ([]documents.SupportingDocument, error) {
	all, err := s.repo.ListByDeptYear(ctx, nil, deptID, academicYear)
	if err != nil {
		return nil, err
	}

	canonical := canonicalSection(f.Section)
	scoped := make([]documents.SupportingDocument, 0, len(all))
	for _, d := range all {
		if canonical != "" && canonicalSection(d.SectionName) != canonical {
			continue
		}
		if f.ProgramCode != "" && !strings.EqualFold(strings.TrimSpace(d.ProgramCode), strings.TrimSpace(f.ProgramCode)) {
			continue
		}
		scoped = append(scoped, d)
	}

	if f.SerialNumber > 0 {
		// Exact and exclusive: an empty result stays empty rather than
		// falling back to keywords and contaminating a neighboring item.
		exact := scoped[:0]
		for _, d := range scoped {
			if d.SerialNumber == f.SerialNumber {
				exact = append(exact, d)
			}
		}
		return dedupeByPath(exact), nil
	}

	if len(f.Keywords) == 0 {
		return dedupeByPath(scoped), nil
	}

	// Exact-title matches rank ahead of keyword-map matches.
	var exactTitle, keyword []documents.SupportingDocument
	for _, d := range scoped {
		title := strings.ToLower(strings.TrimSpace(d.Title))
		matched := false
		for _, kw := range f.Keywords {
			if title == strings.ToLower(strings.TrimSpace(kw)) {
				exactTitle = append(exactTitle, d)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if titleMatchesKeywords(title, f.Keywords) {
			keyword = append(keyword, d)
		}
	}
	return dedupeByPath(append(exactTitle, keyword...)), nil
}

func titleMatchesKeywords(title string, hints []string) bool {
	for _, hint := range hints {
		h := strings.ToLower(strings.TrimSpace(hint))
		if h == "" {
			continue
		}
		if phrases, restricted := restrictedTitlePhrases[h]; restricted {
			for _, p := range phrases {
				if strings.Contains(title, p) {
					return true
				}
			}
			continue
		}
		if strings.Contains(title, h) {
			return true
		}
		for _, term := range keywordMap[h] {
			if strings.Contains(title, term) {
				return true
			}
		}
	}
	return false
}

func canonicalSection(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if c, ok := sectionAliases[n]; ok {
		return c
	}
	return n
}

func dedupeByPath(in []documents.SupportingDocument) []documents.SupportingDocument {
	seen := make(map[string]struct{}, len(in))
	out := make([]documents.SupportingDocument, 0, len(in))
	for _, d := range in {
		key := strings.TrimSpace(d.FilePath)
		if key == "" {
			out = append(out, d)
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
