package normalize

import (
	"testing"

	"gorm.io/datatypes"

	"github.com/Swapnil27012000/uomdcs-sub000/internal/domain/assessment"
	"github.com/Swapnil27012000/uomdcs-sub000/internal/platform/logger"
)

func newTestNormalizer() *Normalizer {
	return New(logger.NewNop())
}

func TestDecodeList_InvalidJSONYieldsEmpty(t *testing.T) {
	n := newTestNormalizer()
	if got := n.DecodeList(datatypes.JSON(`{not json`), "awards"); got != nil {
		t.Fatalf("expected nil for invalid json, got %v", got)
	}
	if got := n.DecodeList(nil, "awards"); got != nil {
		t.Fatalf("expected nil for empty field, got %v", got)
	}
}

func TestEntryValid_SentinelOnlyEntriesDropped(t *testing.T) {
	if EntryValid(map[string]interface{}{"name": "-", "remark": ""}) {
		t.Fatalf("entry with only sentinels must be invalid")
	}
	if !EntryValid(map[string]interface{}{"name": "ABC Startup", "remark": ""}) {
		t.Fatalf("entry with one real value must be valid")
	}
	if EntryValid(map[string]interface{}{"id": "17", "dept_id": "3"}) {
		t.Fatalf("system fields alone must not validate an entry")
	}
}

func TestEntryValid_YearFieldZeroCounts(t *testing.T) {
	if !EntryValid(map[string]interface{}{"name": "-", "year_founded": "0"}) {
		t.Fatalf("a bare numeric year (including 0) must validate the entry")
	}
	if EntryValid(map[string]interface{}{"name": "-", "year_founded": "unknown"}) {
		t.Fatalf("a non-numeric year must not validate the entry")
	}
}

func TestCountedPracticeList_DropsZeroPlaceholders(t *testing.T) {
	n := newTestNormalizer()
	raw := datatypes.JSON(`[{"practice":"Ramp access"},{"practice":"0"},{"practice":"-"},{"practice":""}]`)
	got := n.CountedPracticeList(raw, "inclusive_practices")
	if len(got) != 1 {
		t.Fatalf("expected 1 kept practice, got %d", len(got))
	}
}

func TestNarrative_Sentinels(t *testing.T) {
	for _, in := range []string{"", "  ", "-", "Not provided", "N/A"} {
		if got := Narrative(in); got != "" {
			t.Fatalf("expected empty narrative for %q, got %q", in, got)
		}
	}
	if got := Narrative("  real text  "); got != "real text" {
		t.Fatalf("expected trimmed text, got %q", got)
	}
}

func TestAwards_LevelAndFellowshipDiscrimination(t *testing.T) {
	n := newTestNormalizer()
	raw := datatypes.JSON(`[
		{"name":"A","level":"state"},
		{"name":"B","level":"national"},
		{"name":"C","level":"international","type":"fellowship"},
		{"name":"D","level":"international"},
		{"name":"E","level":"galactic"}
	]`)
	got := n.Awards(raw)
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	want := []assessment.AwardLevel{
		assessment.AwardState,
		assessment.AwardNational,
		assessment.AwardInternationalFellowship,
		assessment.AwardInternational,
		assessment.AwardUnknown,
	}
	for i, lvl := range want {
		if got[i].Level != lvl {
			t.Fatalf("entry %d: expected level %v, got %v", i, lvl, got[i].Level)
		}
	}
}

func TestPublications_ExactDiscriminator(t *testing.T) {
	n := newTestNormalizer()
	raw := datatypes.JSON(`[
		{"title":"P1","type":"Journal"},
		{"title":"P2","type":"Conference"},
		{"title":"P3","type":"ISSN_Journals"},
		{"title":"P4","type":"Journals"}
	]`)
	got := n.Publications(raw)
	want := []assessment.PublicationKind{
		assessment.PublicationJournal,
		assessment.PublicationConference,
		assessment.PublicationISSNJournal,
		assessment.PublicationOther,
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Fatalf("entry %d: expected kind %v, got %v", i, k, got[i].Kind)
		}
	}
}

func TestMetrics_ClampsOutliers(t *testing.T) {
	n := newTestNormalizer()
	raw := datatypes.JSON(`[{"name":"Dr. X","impact_factor":"829112.4","citations":99999999999,"h_index":"55"}]`)
	got := n.Metrics(raw)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].ImpactFactor != 100 {
		t.Fatalf("impact factor must clamp at 100, got %v", got[0].ImpactFactor)
	}
	if got[0].Citations != 10_000_000 {
		t.Fatalf("citations must clamp at 10M, got %v", got[0].Citations)
	}
	if got[0].HIndex != 55 {
		t.Fatalf("h-index should pass through, got %v", got[0].HIndex)
	}
}

func TestEcosystem_TagsAndConcatenates(t *testing.T) {
	n := newTestNormalizer()
	got := n.Ecosystem([]EcosystemSource{
		{Tag: "DPIIT Recognition", Raw: datatypes.JSON(`[{"name":"S1"},{"name":"-"}]`)},
		{Tag: "VC Investment", Raw: datatypes.JSON(`[{"name":"S2","amount":"12"}]`)},
		{Tag: "Forbes Alumni", Raw: datatypes.JSON(`not json`)},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 combined entries, got %d", len(got))
	}
	if got[0].Type != "DPIIT Recognition" || got[1].Type != "VC Investment" {
		t.Fatalf("entries must carry their source tag: %+v", got)
	}
}

func TestDecodeCounts_LooseValues(t *testing.T) {
	n := newTestNormalizer()
	got := n.DecodeCounts(datatypes.JSON(`{"International":2,"National_Conferences":"3","junk":"x"}`), "counts")
	if got["International"] != 2 || got["National_Conferences"] != 3 {
		t.Fatalf("unexpected counts: %v", got)
	}
	if got["junk"] != 0 {
		t.Fatalf("unparseable count must coerce to 0, got %v", got["junk"])
	}
}
