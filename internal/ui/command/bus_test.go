package command

import "testing"

func TestExecuteReturnsResult(t *testing.T) {
	cmd := New().Execute(Request{ID: "ok", Label: "OK", Values: map[string]string{"name": "ada"}})
	res, ok := cmd().(Result)
	if !ok {
		t.Fatalf("expected Result message")
	}
	if res.ID != "ok" || res.Values["name"] != "ada" || res.Err != nil {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestExecuteRejectsMissingID(t *testing.T) {
	res := New().Execute(Request{Label: "OK"})().(Result)
	if res.Err == nil {
		t.Fatalf("expected error for request without id")
	}
}
