package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	for _, title := range sortedTitles(studies) {
		cs := studies[title]
		fmt.Printf("Title = %s, Samples = %d\n", cs.title, cs.samples)
		maxOrders, rmsOrders := cs.Orders()
		for i := range cs.numElements {
			if i == 0 {
				fmt.Printf("%d, %v, %v\n", cs.numElements[i], cs.maxErr[i], cs.rmsErr[i])
				continue
			}
			fmt.Printf("%d, %v, %v, order max = %5.3f, order rms = %5.3f\n",
				cs.numElements[i], cs.maxErr[i], cs.rmsErr[i], maxOrders[i-1], rmsOrders[i-1])
		}
	}
}

type ConvergenceStudy struct {
	title          string
	samples        int
	numElements    []int
	maxErr, rmsErr []float64
}

func NewConvergenceStudy(title string, samples int) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:   title,
		samples: samples,
	}
}

func (cs *ConvergenceStudy) Add(numElements int, maxErr, rmsErr float64) {
	cs.numElements = append(cs.numElements, numElements)
	cs.maxErr = append(cs.maxErr, maxErr)
	cs.rmsErr = append(cs.rmsErr, rmsErr)
}

// Orders is the observed order of accuracy between consecutive entries
func (cs *ConvergenceStudy) Orders() (maxOrders, rmsOrders []float64) {
	order := func(e0, e1 float64, k0, k1 int) float64 {
		return math.Log(e0/e1) / math.Log(float64(k1)/float64(k0))
	}
	for i := 1; i < len(cs.numElements); i++ {
		k0, k1 := cs.numElements[i-1], cs.numElements[i]
		maxOrders = append(maxOrders, order(cs.maxErr[i-1], cs.maxErr[i], k0, k1))
		rmsOrders = append(rmsOrders, order(cs.rmsErr[i-1], cs.rmsErr[i], k0, k1))
	}
	return
}

func sortedTitles(studies map[string]*ConvergenceStudy) (titles []string) {
	titles = maps.Keys(studies)
	slices.Sort(titles)
	return
}

// readCSV groups records of Title, K, Samples, MaxErr, RMSErr by title and sample count
func readCSV(rd io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records        [][]string
		ok             bool
		cs             *ConvergenceStudy
		k, samples     int
		maxErr, rmsErr float64
	)
	studies = make(map[string]*ConvergenceStudy)
	r := csv.NewReader(rd)
	r.FieldsPerRecord = 5
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if rec[0] == "Title" {
			continue
		}
		if k, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if samples, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if maxErr, err = strconv.ParseFloat(rec[3], 64); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if rmsErr, err = strconv.ParseFloat(rec[4], 64); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		combTitle := rec[0] + rec[2]
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(rec[0], samples)
			studies[combTitle] = cs
		}
		cs.Add(k, maxErr, rmsErr)
	}
	return
}
