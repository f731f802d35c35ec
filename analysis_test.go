package fundholdings

import (
	"os"
	"path/filepath"
	"testing"
)

// writeSnapshot writes one snapshot CSV into dir.
func writeSnapshot(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

const q1Snapshot = `序号,股票代码,股票名称,相关资讯,占净值比例,持股数 （万股）,持仓市值,季度
1,600000,股票A,变动详情,25.00,1.00,100.00,2023年1季度
2,600001,股票B,变动详情,15.00,2.00,80.00,2023年1季度
`

const q2Snapshot = `序号,股票代码,股票名称,相关资讯,占净值比例,持股数 （万股）,持仓市值,季度
1,600001,股票B,变动详情,30.00,2.50,90.00,2023年2季度
2,600002,股票C,变动详情,25.00,1.50,85.00,2023年2季度
`

func TestDiscoverFunds(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "fund_000001_q1.csv", q1Snapshot)
	writeSnapshot(t, dir, "fund_000001_q2.csv", q2Snapshot)
	writeSnapshot(t, dir, "fund_000002_q1.csv", q1Snapshot)
	writeSnapshot(t, dir, "badname.csv", q1Snapshot) // no fund identifier
	writeSnapshot(t, dir, "notes.txt", "not a snapshot")

	ff, err := DiscoverFunds(dir)
	if err != nil {
		t.Fatalf("DiscoverFunds() returned error: %v", err)
	}
	codes := ff.Codes()
	if len(codes) != 2 || codes[0] != "000001" || codes[1] != "000002" {
		t.Errorf("Codes() = %v, want [000001 000002]", codes)
	}
	if files := ff.Files("000001"); len(files) != 2 {
		t.Errorf("Files(000001) = %v, want 2 files", files)
	}
}

func TestDiscoverFunds_NoInput(t *testing.T) {
	if _, err := DiscoverFunds(t.TempDir()); err == nil {
		t.Error("DiscoverFunds() on an empty directory, want error")
	}

	dir := t.TempDir()
	writeSnapshot(t, dir, "badname.csv", q1Snapshot)
	if _, err := DiscoverFunds(dir); err == nil {
		t.Error("DiscoverFunds() with only unparseable names, want error")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "fund_000001_q1.csv", q1Snapshot)
	writeSnapshot(t, dir, "fund_000001_q2.csv", q2Snapshot)

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	funds := report.Funds()
	if len(funds) != 1 {
		t.Fatalf("Run() analyzed %d funds, want 1", len(funds))
	}

	a := funds[0]
	if a.Fund != "000001" {
		t.Errorf("Fund = %q, want 000001", a.Fund)
	}
	if len(a.Changes) != 1 {
		t.Fatalf("Changes has %d entries, want 1", len(a.Changes))
	}
	c := a.Changes[0]
	if len(c.Added) != 1 || c.Added[0] != "股票C" {
		t.Errorf("Added = %v, want [股票C]", c.Added)
	}
	if len(c.Removed) != 1 || c.Removed[0] != "股票A" {
		t.Errorf("Removed = %v, want [股票A]", c.Removed)
	}
	if !a.Concentration.First().Equal(40) || !a.Concentration.Last().Equal(55) {
		t.Errorf("concentration = %v..%v, want 40..55", a.Concentration.First(), a.Concentration.Last())
	}
}

func TestRun_SkipsMalformedFund(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "fund_000001_q1.csv", q1Snapshot)
	writeSnapshot(t, dir, "fund_000009_q1.csv", "完全,不是,持仓\n1,2,3\n")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	funds := report.Funds()
	if len(funds) != 1 || funds[0].Fund != "000001" {
		t.Errorf("Funds() = %v, want only 000001; the malformed fund must be omitted", funds)
	}
}

func TestRun_SkipsMalformedFileOnly(t *testing.T) {
	dir := t.TempDir()
	writeSnapshot(t, dir, "fund_000001_q1.csv", q1Snapshot)
	writeSnapshot(t, dir, "fund_000001_zz.csv", "完全,不是,持仓\n1,2,3\n")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	funds := report.Funds()
	if len(funds) != 1 {
		t.Fatalf("Run() analyzed %d funds, want 1", len(funds))
	}
	// Only the good file's quarter survives.
	if quarters := funds[0].History.Quarters(); len(quarters) != 1 {
		t.Errorf("Quarters() = %v, want only 2023-Q1", quarters)
	}
}
