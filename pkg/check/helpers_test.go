package check

import (
	"errors"
	"testing"
)

func TestResult_Pass(t *testing.T) {
	r := &Result{Name: "test", Err: errors.New("stale")}

	result := r.Pass("all good")

	if result.Status != StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, StatusOK)
	}
	if result.Kind != KindNone {
		t.Errorf("Kind = %v, want %v", result.Kind, KindNone)
	}
	if result.Message != "all good" {
		t.Errorf("Message = %q, want %q", result.Message, "all good")
	}
	if result.Err != nil {
		t.Errorf("Err = %v, want nil", result.Err)
	}
}

func TestResult_Fail(t *testing.T) {
	r := &Result{Name: "test"}
	err := errors.New("test error")

	result := r.Fail(KindImport, "something failed", err)

	if result.Status != StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, StatusFail)
	}
	if result.Kind != KindImport {
		t.Errorf("Kind = %v, want %v", result.Kind, KindImport)
	}
	if result.Message != "something failed" {
		t.Errorf("Message = %q, want %q", result.Message, "something failed")
	}
	if result.Err != err {
		t.Errorf("Err = %v, want %v", result.Err, err)
	}
}

func TestResult_AddDetail(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetail("first detail").AddDetail("second detail")

	if len(result.Details) != 2 {
		t.Errorf("len(Details) = %d, want 2", len(result.Details))
	}
	if result.Details[0] != "first detail" || result.Details[1] != "second detail" {
		t.Errorf("Details = %v, want [first detail, second detail]", result.Details)
	}
	if result != r {
		t.Error("AddDetail should return the same Result pointer")
	}
}

func TestResult_AddDetailf(t *testing.T) {
	r := &Result{Name: "test"}

	result := r.AddDetailf("renderer: %s", "/usr/bin/weasyprint")

	if len(result.Details) != 1 || result.Details[0] != "renderer: /usr/bin/weasyprint" {
		t.Errorf("Details = %v, want [renderer: /usr/bin/weasyprint]", result.Details)
	}
}
