package main

import (
	"bufio"
	"crypto/rand"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	kyber "ML-KEM/kyber"
)

const (
	defaultTrials    = 64
	defaultJSONLPath = "kem_sweep.jsonl"
	defaultCSVPath   = "kem_sweep.csv"
	defaultHTMLPath  = "kem_sweep.html"
)

// trialRecord is one measured keygen/encap/decap cycle, written as a JSONL
// row so later runs can be appended and re-plotted without recomputing.
type trialRecord struct {
	Stage     string `json:"stage"`
	Set       string `json:"set"`
	Trial     int    `json:"trial"`
	KeygenUS  int64  `json:"keygen_us"`
	EncapUS   int64  `json:"encap_us"`
	DecapUS   int64  `json:"decap_us"`
	PublicB   int    `json:"public_bytes"`
	SecretB   int    `json:"secret_bytes"`
	CipherB   int    `json:"ciphertext_bytes"`
	RoundTrip bool   `json:"round_trip"`
}

type summary struct {
	Set       string
	KeygenUS  int64
	EncapUS   int64
	DecapUS   int64
	PublicB   int
	CipherB   int
	Failures  int
	TrialsRun int
}

type runner struct {
	jsonFile  *os.File
	jsonBuf   *bufio.Writer
	jsonEnc   *json.Encoder
	csvFile   *os.File
	csvWriter *csv.Writer
}

func newRunner(jsonlPath, csvPath string) (*runner, error) {
	jf, err := os.Create(jsonlPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", jsonlPath, err)
	}
	cf, err := os.Create(csvPath)
	if err != nil {
		jf.Close()
		return nil, fmt.Errorf("create %s: %w", csvPath, err)
	}
	r := &runner{
		jsonFile:  jf,
		jsonBuf:   bufio.NewWriter(jf),
		csvFile:   cf,
		csvWriter: csv.NewWriter(cf),
	}
	r.jsonEnc = json.NewEncoder(r.jsonBuf)
	return r, nil
}

func (r *runner) close() {
	r.csvWriter.Flush()
	r.csvFile.Close()
	r.jsonBuf.Flush()
	r.jsonFile.Close()
}

func median(v []int64) int64 {
	if len(v) == 0 {
		return 0
	}
	sorted := append([]int64(nil), v...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[len(sorted)/2]
}

func (r *runner) sweepSet(ps *kyber.ParameterSet, trials int) (summary, error) {
	var kg, en, de []int64
	sum := summary{Set: ps.Name, TrialsRun: trials}
	for trial := 0; trial < trials; trial++ {
		t0 := time.Now()
		pk, sk, err := ps.GenerateKeyPair(rand.Reader)
		if err != nil {
			return sum, fmt.Errorf("%s keygen: %w", ps.Name, err)
		}
		keygenUS := time.Since(t0).Microseconds()

		t0 = time.Now()
		ct, ssA, err := pk.Encapsulate(rand.Reader)
		if err != nil {
			return sum, fmt.Errorf("%s encap: %w", ps.Name, err)
		}
		encapUS := time.Since(t0).Microseconds()

		t0 = time.Now()
		ssB, err := sk.Decapsulate(ct)
		if err != nil {
			return sum, fmt.Errorf("%s decap: %w", ps.Name, err)
		}
		decapUS := time.Since(t0).Microseconds()

		ok := string(ssA) == string(ssB)
		if !ok {
			sum.Failures++
		}
		sk.Zeroize()

		kg = append(kg, keygenUS)
		en = append(en, encapUS)
		de = append(de, decapUS)
		rec := trialRecord{
			Stage:     "trial",
			Set:       ps.Name,
			Trial:     trial,
			KeygenUS:  keygenUS,
			EncapUS:   encapUS,
			DecapUS:   decapUS,
			PublicB:   ps.PublicKeySize,
			SecretB:   ps.SecretKeySize,
			CipherB:   ps.CiphertextSize,
			RoundTrip: ok,
		}
		if err := r.jsonEnc.Encode(&rec); err != nil {
			return sum, fmt.Errorf("write jsonl: %w", err)
		}
	}
	sum.KeygenUS = median(kg)
	sum.EncapUS = median(en)
	sum.DecapUS = median(de)
	sum.PublicB = ps.PublicKeySize
	sum.CipherB = ps.CiphertextSize
	return sum, nil
}

func (r *runner) writeCSV(sums []summary) error {
	header := []string{"set", "trials", "keygen_us_med", "encap_us_med", "decap_us_med",
		"public_bytes", "ciphertext_bytes", "failures"}
	if err := r.csvWriter.Write(header); err != nil {
		return err
	}
	for _, s := range sums {
		row := []string{
			s.Set,
			fmt.Sprintf("%d", s.TrialsRun),
			fmt.Sprintf("%d", s.KeygenUS),
			fmt.Sprintf("%d", s.EncapUS),
			fmt.Sprintf("%d", s.DecapUS),
			fmt.Sprintf("%d", s.PublicB),
			fmt.Sprintf("%d", s.CipherB),
			fmt.Sprintf("%d", s.Failures),
		}
		if err := r.csvWriter.Write(row); err != nil {
			return err
		}
	}
	r.csvWriter.Flush()
	return r.csvWriter.Error()
}

func renderHTML(path string, sums []summary) error {
	page := components.NewPage().SetPageTitle("KEM Latency and Size Sweep")

	names := make([]string, 0, len(sums))
	kg := make([]opts.BarData, 0, len(sums))
	en := make([]opts.BarData, 0, len(sums))
	de := make([]opts.BarData, 0, len(sums))
	for _, s := range sums {
		names = append(names, s.Set)
		kg = append(kg, opts.BarData{Value: s.KeygenUS})
		en = append(en, opts.BarData{Value: s.EncapUS})
		de = append(de, opts.BarData{Value: s.DecapUS})
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Median latency per operation"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "µs"}),
	)
	bar.SetXAxis(names).
		AddSeries("keygen", kg).
		AddSeries("encap", en).
		AddSeries("decap", de)
	page.AddCharts(bar)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Ciphertext size vs. decap latency"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "ciphertext bytes"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "decap µs"}),
	)
	items := make([]opts.ScatterData, 0, len(sums))
	for _, s := range sums {
		items = append(items, opts.ScatterData{
			Name:       s.Set,
			Value:      []interface{}{s.CipherB, s.DecapUS, s.Set},
			SymbolSize: 12,
		})
	}
	sc.AddSeries("parameter sets", items)
	page.AddCharts(sc)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

func main() {
	trials := flag.Int("trials", defaultTrials, "trials per parameter set")
	jsonlPath := flag.String("jsonl", defaultJSONLPath, "per-trial JSONL output path")
	csvPath := flag.String("csv", defaultCSVPath, "summary CSV output path")
	htmlPath := flag.String("html", defaultHTMLPath, "chart page output path")
	flag.Parse()

	if *trials <= 0 {
		log.Fatal("trials must be positive")
	}
	r, err := newRunner(*jsonlPath, *csvPath)
	if err != nil {
		log.Fatal(err)
	}
	defer r.close()

	var sums []summary
	for _, ps := range kyber.ParameterSets {
		start := time.Now()
		s, err := r.sweepSet(ps, *trials)
		if err != nil {
			log.Fatalf("sweep: %v", err)
		}
		sums = append(sums, s)
		fmt.Printf("[sweep] %-10s keygen=%dµs encap=%dµs decap=%dµs ct=%dB failures=%d (%s)\n",
			s.Set, s.KeygenUS, s.EncapUS, s.DecapUS, s.CipherB, s.Failures, time.Since(start).Round(time.Millisecond))
	}
	if err := r.writeCSV(sums); err != nil {
		log.Fatalf("write csv: %v", err)
	}
	if err := renderHTML(*htmlPath, sums); err != nil {
		log.Fatalf("render charts: %v", err)
	}
	fmt.Printf("results written to %s, %s and %s\n", *jsonlPath, *csvPath, *htmlPath)
}
