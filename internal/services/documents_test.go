package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/documents"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

type fakeDocumentRepo struct {
	docs []documents.SupportingDocument
}

func (f *fakeDocumentRepo) ListByDeptYear(ctx context.Context, tx *gorm.DB, deptID int, academicYear string) ([]documents.SupportingDocument, error) {
	var out []documents.SupportingDocument
	for _, d := range f.docs {
		if d.DeptID == deptID && d.AcademicYear == academicYear {
			out = append(out, d)
		}
	}
	return out, nil
}

func newTestDocumentService(docs []documents.SupportingDocument) DocumentService {
	return NewDocumentService(nil, logger.NewNop(), &fakeDocumentRepo{docs: docs})
}

func TestSerialNumberMatchIsExactAndExclusive(t *testing.T) {
	svc := newTestDocumentService([]documents.SupportingDocument{
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "Faculty Output", SerialNumber: 3, Title: "State award certificate", FilePath: "a.pdf"},
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "Faculty Output", SerialNumber: 4, Title: "National award certificate", FilePath: "b.pdf"},
	})
	ctx := context.Background()

	got, err := svc.Match(ctx, 42, "2024-2025", DocumentFilter{Section: "faculty output", SerialNumber: 3})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].FilePath != "a.pdf" {
		t.Fatalf("serial match: got %+v", got)
	}

	// An empty serial result stays empty even when keyword hints would
	// match; loose fallback is how documents leaked across items.
	got, err = svc.Match(ctx, 42, "2024-2025", DocumentFilter{
		Section:      "faculty output",
		SerialNumber: 99,
		Keywords:     []string{"awards"},
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty serial result fell back to keywords: %+v", got)
	}
}

func TestProgramCodeScoping(t *testing.T) {
	svc := newTestDocumentService([]documents.SupportingDocument{
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "placement", SerialNumber: 1, ProgramCode: "MSC-CS", FilePath: "msc.pdf"},
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "placement", SerialNumber: 1, ProgramCode: "BSC-CS", FilePath: "bsc.pdf"},
	})
	got, err := svc.Match(context.Background(), 42, "2024-2025", DocumentFilter{
		Section:      "placement",
		SerialNumber: 1,
		ProgramCode:  "msc-cs",
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].FilePath != "msc.pdf" {
		t.Fatalf("program scoping: got %+v", got)
	}
}

func TestKeywordMatchingPrefersExactTitle(t *testing.T) {
	svc := newTestDocumentService([]documents.SupportingDocument{
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "faculty_output", Title: "Patent grant letter", FilePath: "k.pdf"},
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "faculty_output", Title: "patents", FilePath: "exact.pdf"},
	})
	got, err := svc.Match(context.Background(), 42, "2024-2025", DocumentFilter{
		Section:  "faculty_output",
		Keywords: []string{"patents"},
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("keyword match count: got %+v", got)
	}
	if got[0].FilePath != "exact.pdf" {
		t.Fatalf("exact-title match must rank first: %+v", got)
	}
}

func TestRestrictedKeywordFamilies(t *testing.T) {
	svc := newTestDocumentService([]documents.SupportingDocument{
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "faculty_output", Title: "UGC CARE list inclusion proof", FilePath: "ok.pdf"},
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "faculty_output", Title: "UGC committee meeting minutes", FilePath: "noise.pdf"},
	})
	got, err := svc.Match(context.Background(), 42, "2024-2025", DocumentFilter{
		Section:  "faculty_output",
		Keywords: []string{"ugc"},
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].FilePath != "ok.pdf" {
		t.Fatalf("restricted family leaked: %+v", got)
	}
}

func TestSectionAliasesAndDedupe(t *testing.T) {
	svc := newTestDocumentService([]documents.SupportingDocument{
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "Conferences", SerialNumber: 2, FilePath: "dup.pdf"},
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "Collaborations", SerialNumber: 2, FilePath: "dup.pdf"},
		{DeptID: 42, AcademicYear: "2024-2025", SectionName: "Faculty Output", SerialNumber: 2, FilePath: "other.pdf"},
	})
	got, err := svc.Match(context.Background(), 42, "2024-2025", DocumentFilter{
		Section:      "conferences and collaborations",
		SerialNumber: 2,
	})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(got) != 1 || got[0].FilePath != "dup.pdf" {
		t.Fatalf("alias/dedupe: got %+v", got)
	}
}
