package service

import (
	"errors"
	"strings"
	"testing"

	"leadscoring_backend/platform/apperr"
)

func TestParseLeadsCSV_ValidFile(t *testing.T) {
	csvData := strings.Join([]string{
		"name,role,company,industry,location,bio",
		"Ava Jones,CEO,FlowMetrics,B2B SaaS,Austin,Runs a mid-market SaaS company",
		"Ben Clark,Developer,ShopWorks,Retail,Leeds,",
	}, "\n")

	params, err := parseLeadsCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(params) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(params))
	}
	if params[0].Name != "Ava Jones" || params[0].Role != "CEO" {
		t.Fatalf("unexpected first lead %+v", params[0])
	}
	if params[1].Bio != "" {
		t.Fatalf("expected empty bio, got %q", params[1].Bio)
	}
}

func TestParseLeadsCSV_HeaderIsCaseInsensitiveAndBioOptional(t *testing.T) {
	csvData := strings.Join([]string{
		"Name,ROLE,Company,Industry,Location",
		"Ava Jones,CEO,FlowMetrics,B2B SaaS,Austin",
	}, "\n")

	params, err := parseLeadsCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(params) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(params))
	}
}

func TestParseLeadsCSV_MissingColumn_Rejected(t *testing.T) {
	csvData := strings.Join([]string{
		"name,role,company,location",
		"Ava Jones,CEO,FlowMetrics,Austin",
	}, "\n")

	_, err := parseLeadsCSV(strings.NewReader(csvData))
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseLeadsCSV_RowWithBlankRequiredField_RejectsWholeFile(t *testing.T) {
	csvData := strings.Join([]string{
		"name,role,company,industry,location",
		"Ava Jones,CEO,FlowMetrics,B2B SaaS,Austin",
		"Ben Clark,,ShopWorks,Retail,Leeds",
	}, "\n")

	_, err := parseLeadsCSV(strings.NewReader(csvData))
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	details, ok := appErr.Details.([]string)
	if !ok || len(details) != 1 {
		t.Fatalf("expected one row error detail, got %v", appErr.Details)
	}
	if !strings.Contains(details[0], "row 3") || !strings.Contains(details[0], "role") {
		t.Fatalf("expected row 3 role error, got %q", details[0])
	}
}

func TestParseLeadsCSV_EmptyFile_Rejected(t *testing.T) {
	if _, err := parseLeadsCSV(strings.NewReader("")); apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for empty file, got %v", err)
	}
}

func TestParseLeadsCSV_HeaderOnly_Rejected(t *testing.T) {
	csvData := "name,role,company,industry,location\n"
	if _, err := parseLeadsCSV(strings.NewReader(csvData)); apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for header-only file, got %v", err)
	}
}
