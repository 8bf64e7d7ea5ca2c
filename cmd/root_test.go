package cmd

import "testing"

func TestTopLevelCommand(t *testing.T) {
	root, _, err := rootCmd.Find([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if got := topLevelCommand(root); got != "tend" {
		t.Errorf("topLevelCommand(root) = %q, want tend", got)
	}

	sub, _, err := rootCmd.Find([]string{"streak"})
	if err != nil {
		t.Fatal(err)
	}
	if got := topLevelCommand(sub); got != "streak" {
		t.Errorf("topLevelCommand(streak) = %q, want streak", got)
	}

	nested, _, err := rootCmd.Find([]string{"config", "set"})
	if err != nil {
		t.Fatal(err)
	}
	if got := topLevelCommand(nested); got != "config" {
		t.Errorf("topLevelCommand(config set) = %q, want config", got)
	}
}

func TestFormatStreakCount(t *testing.T) {
	if got := formatStreakCount(0); got != "0 periods" {
		t.Errorf("formatStreakCount(0) = %q", got)
	}
	if got := formatStreakCount(1); got != "1 period" {
		t.Errorf("formatStreakCount(1) = %q", got)
	}
	if got := formatStreakCount(5); got != "5 periods" {
		t.Errorf("formatStreakCount(5) = %q", got)
	}
}
