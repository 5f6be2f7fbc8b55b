package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"cardtracker.app/api/internal/export"
	"cardtracker.app/api/internal/model"
	"cardtracker.app/api/internal/timeline"
)

var _ = Describe("ParseFormat", func() {
	DescribeTable("accepted values",
		func(in string, want export.Format) {
			got, err := export.ParseFormat(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("empty defaults to json", "", export.FormatJSON),
		Entry("json", "json", export.FormatJSON),
		Entry("csv", "csv", export.FormatCSV),
		Entry("xml", "xml", export.FormatXML),
		Entry("xlsx upper case", "XLSX", export.FormatXLSX),
	)

	It("rejects anything else", func() {
		_, err := export.ParseFormat("pdf")
		Expect(err).To(MatchError(export.ErrUnsupportedFormat))
	})
})

var _ = Describe("Encode", func() {
	var metrics export.Metrics

	BeforeEach(func() {
		metrics = export.NewMetrics(&timeline.Result{
			TotalTime:          25 * time.Second,
			TimePerList:        map[string]time.Duration{"A": 10 * time.Second, "B": 15 * time.Second},
			TimePerMember:      map[string]time.Duration{"M1": 2500 * time.Millisecond},
			ListVisitCounts:    map[string]int{"A": 1, "B": 1, "C": 1},
			MoveCountsByMember: map[string]map[string]int{"M1": {"B": 1}},
		})
	})

	It("converts durations to seconds", func() {
		Expect(metrics.TotalTimeSeconds).To(Equal(25.0))
		Expect(metrics.TimePerList).To(Equal(map[string]float64{"A": 10, "B": 15}))
		Expect(metrics.TimePerMember).To(Equal(map[string]float64{"M1": 2.5}))
	})

	It("keeps the total equal to the sum of list times with sub-second parts", func() {
		start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		a, b, c := "A", "B", "C"
		result, err := timeline.Aggregate([]model.CardEvent{
			{Seq: 0, Kind: model.ActionCreateCard, ListName: &a, OccurredAt: start},
			{Seq: 1, Kind: model.ActionUpdateCard, ListName: &b, OccurredAt: start.Add(100 * time.Millisecond)},
			{Seq: 2, Kind: model.ActionUpdateCard, ListName: &c, OccurredAt: start.Add(300 * time.Millisecond)},
		})
		Expect(err).NotTo(HaveOccurred())

		m := export.NewMetrics(result)
		Expect(m.TimePerList).To(Equal(map[string]float64{"A": 0.1, "B": 0.2}))

		var sum float64
		for _, k := range []string{"A", "B"} {
			sum += m.TimePerList[k]
		}
		Expect(m.TotalTimeSeconds).To(Equal(sum))

		raw, err := json.Marshal(m)
		Expect(err).NotTo(HaveOccurred())
		var decoded struct {
			Total float64            `json:"total_time_seconds"`
			Lists map[string]float64 `json:"time_per_list"`
		}
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded.Total).To(Equal(decoded.Lists["A"] + decoded.Lists["B"]))
	})

	It("flattens fields in a stable order with nested maps as JSON", func() {
		fields := export.Fields(metrics)

		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Name)
		}
		Expect(names).To(Equal([]string{
			"total_time_seconds", "time_per_list", "time_per_member", "list_visit_counts", "move_counts_by_member",
		}))
		Expect(fields[0].Text()).To(Equal("25"))
		Expect(fields[1].Text()).To(Equal(`{"A":10,"B":15}`))
		Expect(fields[4].Text()).To(Equal(`{"M1":{"B":1}}`))
	})

	It("writes CSV with a Metric,Value header", func() {
		doc, err := export.Encode(export.FormatCSV, "abc", metrics)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.ContentType).To(Equal("text/csv"))
		Expect(doc.Filename).To(Equal("card_abc_metrics.csv"))
		Expect(doc.ContentDisposition()).To(Equal("attachment; filename=card_abc_metrics.csv"))

		rows, err := csv.NewReader(bytes.NewReader(doc.Body)).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(6))
		Expect(rows[0]).To(Equal([]string{"Metric", "Value"}))
		Expect(rows[1]).To(Equal([]string{"total_time_seconds", "25"}))
		Expect(rows[3]).To(Equal([]string{"time_per_member", `{"M1":2.5}`}))
	})

	It("writes XML with one element per metric", func() {
		doc, err := export.Encode(export.FormatXML, "abc", metrics)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.ContentType).To(Equal("application/xml"))

		body := string(doc.Body)
		Expect(body).To(HavePrefix("<metrics><total_time_seconds>25</total_time_seconds>"))
		Expect(body).To(ContainSubstring(`<list_visit_counts>{&#34;A&#34;:1,&#34;B&#34;:1,&#34;C&#34;:1}</list_visit_counts>`))
		Expect(body).To(HaveSuffix("</metrics>"))
	})

	It("writes a Metrics sheet for xlsx", func() {
		doc, err := export.Encode(export.FormatXLSX, "abc", metrics)
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Filename).To(Equal("card_abc_metrics.xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Metrics")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(6))
		Expect(rows[0]).To(Equal([]string{"Metric", "Value"}))
		Expect(rows[1]).To(Equal([]string{"total_time_seconds", "25"}))
		Expect(rows[2]).To(Equal([]string{"time_per_list", `{"A":10,"B":15}`}))
	})

	It("writes the JSON view", func() {
		doc, err := export.Encode(export.FormatJSON, "abc", metrics)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(doc.Body, &decoded)).To(Succeed())
		Expect(decoded).To(HaveKeyWithValue("total_time_seconds", 25.0))
		Expect(decoded).To(HaveKey("move_counts_by_member"))
	})

	It("encodes a bare message as a single row", func() {
		doc, err := export.EncodeMessage(export.FormatXLSX, "abc", "no history for this card")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Filename).To(Equal("card_abc_metrics.xlsx"))

		f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Metrics")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(Equal([][]string{{"Metric", "Value"}, {"message", "no history for this card"}}))

		doc, err = export.EncodeMessage(export.FormatJSON, "abc", "no history for this card")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Body).To(MatchJSON(`{"message":"no history for this card"}`))
	})

	It("rejects unknown formats", func() {
		_, err := export.Encode(export.Format("pdf"), "abc", metrics)
		Expect(err).To(MatchError(export.ErrUnsupportedFormat))
	})
})
