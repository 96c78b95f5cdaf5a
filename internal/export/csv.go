package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/emrzvv/gamma-research/distribution"
	"github.com/emrzvv/gamma-research/internal/model"
	"github.com/emrzvv/gamma-research/internal/stats"
)

func writeServersCfgToCSV(servers []*model.Server, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"id", "speed", "max_conn"})
	for _, s := range servers {
		w.Write([]string{
			fmt.Sprintf("%d", s.ID),
			fmt.Sprintf("%.3f", s.Parameters.Speed),
			fmt.Sprintf("%d", s.Parameters.MaxConnections),
		})
	}
	w.Flush()
	return w.Error()
}

func writeArrivalsToCSV(st *stats.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"time_s", "request_id"})
	for _, a := range st.Arrivals {
		w.Write([]string{
			fmt.Sprintf("%.5f", a.T),
			fmt.Sprintf("%d", a.RequestID),
		})
	}
	w.Flush()
	return w.Error()
}

func writeRequestsToCSV(st *stats.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"server_id", "start_s", "end_s", "duration"})
	for _, r := range st.Requests {
		w.Write([]string{
			fmt.Sprintf("%d", r.ServerID),
			fmt.Sprintf("%.5f", r.T1),
			fmt.Sprintf("%.5f", r.T2),
			fmt.Sprintf("%.5f", r.Duration),
		})
	}
	w.Flush()
	return w.Error()
}

func writeDropsToCSV(st *stats.Statistics, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"server_id", "request_id", "time_s", "reason"})
	for _, d := range st.Drops {
		w.Write([]string{
			fmt.Sprintf("%d", d.ServerID),
			fmt.Sprintf("%d", d.RequestID),
			fmt.Sprintf("%.5f", d.T),
			d.Reason,
		})
	}
	w.Flush()
	return w.Error()
}

func writeSnapshotsToCSV(servers []*model.Server, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"time_s", "server_id", "connections"})
	for _, s := range servers {
		for _, ss := range s.Snapshots {
			w.Write([]string{
				fmt.Sprintf("%.5f", ss.T),
				fmt.Sprintf("%d", s.ID),
				fmt.Sprintf("%d", ss.Connections),
			})
		}
	}
	w.Flush()
	return w.Error()
}

// writeSummaryToCSV: эмпирические моменты времён обслуживания рядом с
// аналитическими моментами распределения.
func writeSummaryToCSV(st *stats.Statistics, svc distribution.Gamma, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	sum := st.Summarize()
	_ = w.Write([]string{"metric", "empirical", "analytic"})
	w.Write([]string{"n", fmt.Sprintf("%d", sum.N), ""})
	w.Write([]string{"mean", fmt.Sprintf("%.6f", sum.Mean), fmt.Sprintf("%.6f", svc.Mean())})
	w.Write([]string{"variance", fmt.Sprintf("%.6f", sum.Variance), fmt.Sprintf("%.6f", svc.Variance())})
	w.Write([]string{"std_dev", fmt.Sprintf("%.6f", sum.StdDev), fmt.Sprintf("%.6f", svc.StdDev())})
	w.Write([]string{"skewness", "", fmt.Sprintf("%.6f", svc.Skewness())})
	w.Write([]string{"p50", fmt.Sprintf("%.6f", sum.P50), ""})
	w.Write([]string{"p95", fmt.Sprintf("%.6f", sum.P95), ""})
	w.Write([]string{"p99", fmt.Sprintf("%.6f", sum.P99), ""})
	w.Flush()
	return w.Error()
}

func WriteSamples(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"value"})
	for _, v := range samples {
		w.Write([]string{fmt.Sprintf("%.8f", v)})
	}
	w.Flush()
	return w.Error()
}

func ToCSV(out string, st *stats.Statistics, servers []*model.Server, svc distribution.Gamma) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return err
	}
	if err := writeServersCfgToCSV(servers, out+"/servers.csv"); err != nil {
		return err
	}
	if err := writeArrivalsToCSV(st, out+"/arrivals.csv"); err != nil {
		return err
	}
	if err := writeRequestsToCSV(st, out+"/requests.csv"); err != nil {
		return err
	}
	if err := writeDropsToCSV(st, out+"/drops.csv"); err != nil {
		return err
	}
	if err := writeSnapshotsToCSV(servers, out+"/snapshots.csv"); err != nil {
		return err
	}
	return writeSummaryToCSV(st, svc, out+"/summary.csv")
}
