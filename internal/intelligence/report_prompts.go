package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/genbaflow/internal/domain"
)

// Placeholders substituted for blank narrative fields so the model never sees
// an empty section.
const (
	PlaceholderNone       = "特になし" // nothing in particular
	PlaceholderUndecided  = "未定"   // not yet decided
	PlaceholderNotEntered = "未記入"  // left blank by the reporter
)

// reportInstructions frames the model as the site manager writing for the
// president and accounting staff.
const reportInstructions = `あなたは民間工事を長年担当してきた現場責任者です。
以下の入力を整理し、社長や経理担当者がすぐに現場の状況をつかめる、プロの作業日報を作成してください。`

// reportRules are the fixed creation rules appended to every prompt.
const reportRules = `作成ルール：
1. 冒頭に「お疲れ様です。本日の作業報告をいたします。」と一行添える。
2. 箇条書きを中心に構成し、読みやすさを優先する。
3. 専門用語は使ってよいが、経理担当者が工数と資材の動きを理解できる言い回しにする。
4. 安全管理が手順どおり適切に行われたことをはっきり強調する。
5. 最後は「以上、よろしくお願いいたします。」で締める。`

// ComposeReportPrompt renders a report snapshot into the instruction block sent
// to the generation service. Output depends only on data. Hourly rates and
// subcontractors are never included.
func ComposeReportPrompt(data domain.DailyReportData) string {
	var b strings.Builder

	b.WriteString(reportInstructions)
	b.WriteString("\n\n")

	b.WriteString("【現場情報】\n")
	fmt.Fprintf(&b, "・現場名：%s\n", orPlaceholder(data.ProjectName, PlaceholderNotEntered))
	fmt.Fprintf(&b, "・作業日：%s\n\n", orPlaceholder(data.Date, PlaceholderNotEntered))

	b.WriteString("【稼働状況】\n")
	b.WriteString(workerLines(data.Workers))
	b.WriteString("\n")

	b.WriteString("【作業内容詳細】\n")
	b.WriteString(orPlaceholder(data.WorkContent, PlaceholderNotEntered))
	b.WriteString("\n\n")

	b.WriteString("【使用機械・資材】\n")
	fmt.Fprintf(&b, "・使用機械：%s\n", orPlaceholder(data.MachinesUsed, PlaceholderNone))
	fmt.Fprintf(&b, "・搬入資材：%s\n\n", orPlaceholder(data.MaterialsProcurement, PlaceholderNone))

	b.WriteString("【安全管理・その他】\n")
	fmt.Fprintf(&b, "・安全注意事項：%s\n", orPlaceholder(data.SafetyNotes, PlaceholderNotEntered))
	fmt.Fprintf(&b, "・明日の予定：%s\n", orPlaceholder(data.TomorrowPlan, PlaceholderUndecided))
	fmt.Fprintf(&b, "・備考：%s\n\n", orPlaceholder(data.Memo, PlaceholderNone))

	b.WriteString("---\n")
	b.WriteString(reportRules)
	b.WriteString("\n")

	return b.String()
}

func workerLines(workers []domain.WorkerEntry) string {
	if len(workers) == 0 {
		return "・" + PlaceholderNone + "\n"
	}
	var b strings.Builder
	for _, w := range workers {
		fmt.Fprintf(&b, "・%s: %s〜%s (休憩%d分)\n",
			orPlaceholder(w.Name, PlaceholderNotEntered),
			orPlaceholder(w.StartTime, PlaceholderNotEntered),
			orPlaceholder(w.EndTime, PlaceholderNotEntered),
			max(0, w.BreakMinutes))
	}
	return b.String()
}

func orPlaceholder(v, placeholder string) string {
	return strings.TrimSpace(domain.CoalesceStr(v, placeholder))
}
