package integration

import (
	"bytes"
	"net/http"
	"testing"
)

func TestIntegration_ValidationErrors(t *testing.T) {
	waitReady(t)
	u := baseURL()

	cases := []struct {
		name, body, ctype string
		want              int
	}{
		{"missing_name", `{"description":"x","price":1,"quantity":1}`, "application/json", http.StatusBadRequest},
		{"zero_quantity", `{"name":"e1","description":"x","price":1,"quantity":0}`, "application/json", http.StatusBadRequest},
		{"malformed_json", `{"name":"e2",`, "application/json", http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := http.NewRequest(http.MethodPost, u+"/products", bytes.NewBufferString(tc.body))
			r.Header.Set("Content-Type", tc.ctype)
			resp, err := http.DefaultClient.Do(r)
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.want {
				t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, resp.StatusCode)
			}
		})
	}
}

func TestIntegration_UnknownProductAndOrder(t *testing.T) {
	waitReady(t)
	u := baseURL()

	resp, err := http.Get(u + "/products/__missing__")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	resp, err = http.Get(u + "/orders/__missing__")
	if err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
