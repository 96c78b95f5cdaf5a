package export

import (
	"encoding/csv"
	"os"
	"testing"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/config"
	"github.com/emrzvv/gamma-research/internal/model"
	"github.com/emrzvv/gamma-research/internal/stats"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestToCSV(t *testing.T) {
	out := t.TempDir()

	cfg := &config.Config{}
	cfg.Cluster.Servers = 2
	st := stats.NewStatistics(cfg)
	st.AddArrival(&stats.ArrivalEvent{T: 0.5, RequestID: 1})
	st.AddRequest(&stats.RequestEvent{ServerID: 1, T1: 0.5, T2: 0.8, Duration: 0.3})
	st.AddDrop(&stats.DropEvent{ServerID: 2, RequestID: 2, T: 1.0, Reason: "overloaded"})

	servers := []*model.Server{
		{ID: 1, Parameters: &model.ServerParameters{Speed: 1.0, MaxConnections: 10}},
		{ID: 2, Parameters: &model.ServerParameters{Speed: 0.8, MaxConnections: 10}},
	}

	svc, err := distribution.NewGamma(3.0, 10.0)
	if err != nil {
		t.Fatal(err)
	}

	if err := ToCSV(out, st, servers, svc); err != nil {
		t.Fatal(err)
	}

	for file, rows := range map[string]int{
		"servers.csv":  3, // заголовок + 2 сервера
		"arrivals.csv": 2,
		"requests.csv": 2,
		"drops.csv":    2,
	} {
		if got := len(readCSV(t, out+"/"+file)); got != rows {
			t.Errorf("%s: %d rows, want %d", file, got, rows)
		}
	}

	summary := readCSV(t, out+"/summary.csv")
	if summary[0][0] != "metric" {
		t.Errorf("summary header = %v", summary[0])
	}
	if len(summary) < 8 {
		t.Errorf("summary has %d rows", len(summary))
	}
}

func TestWriteSamples(t *testing.T) {
	path := t.TempDir() + "/samples.csv"
	if err := WriteSamples(path, []float64{0.1, 0.2, 0.3}); err != nil {
		t.Fatal(err)
	}
	if rows := readCSV(t, path); len(rows) != 4 {
		t.Fatalf("samples.csv: %d rows, want 4", len(rows))
	}
}
