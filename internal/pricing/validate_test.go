package pricing

import (
	"errors"
	"strings"
	"testing"

	"server/internal/domain"
)

func validInput() domain.CampaignInput {
	return domain.CampaignInput{
		TargetUsers: 200_000,
		BaseRate:    0.0549,
		Allocation:  domain.Allocation{SMSPct: 20, AppPct: 30, EDMPct: 50},
		Schedule:    domain.Schedule{StatementWeeks: 4, BannerWeeks: 3},
	}
}

func TestValidateAcceptsFullReach(t *testing.T) {
	if err := Validate(validInput()); err != nil {
		t.Fatalf("Validate returned error for valid input: %v", err)
	}
}

func TestValidateRejectsOverAllocation(t *testing.T) {
	input := validInput()
	input.Allocation = domain.Allocation{SMSPct: 50, AppPct: 40, EDMPct: 30}
	err := Validate(input)
	if !errors.Is(err, domain.ErrReachExceeded) {
		t.Fatalf("expected ErrReachExceeded, got %v", err)
	}
}

func TestValidateBounds(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.CampaignInput)
	}{
		{"target too small", func(in *domain.CampaignInput) { in.TargetUsers = 10_000 }},
		{"target too large", func(in *domain.CampaignInput) { in.TargetUsers = 600_000 }},
		{"rate too low", func(in *domain.CampaignInput) { in.BaseRate = 0.0001 }},
		{"rate too high", func(in *domain.CampaignInput) { in.BaseRate = 0.20 }},
		{"negative allocation", func(in *domain.CampaignInput) { in.Allocation.SMSPct = -5 }},
		{"weeks over max", func(in *domain.CampaignInput) { in.Schedule.StatementWeeks = 13 }},
		{"negative weeks", func(in *domain.CampaignInput) { in.Schedule.BannerWeeks = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			if err := Validate(input); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestAdvisories(t *testing.T) {
	input := validInput()
	if advs := Advisories(input); len(advs) != 0 {
		t.Fatalf("expected no advisories for full reach, got %#v", advs)
	}

	input.Allocation = domain.Allocation{SMSPct: 20, AppPct: 30, EDMPct: 25}
	advs := Advisories(input)
	if len(advs) != 1 || advs[0].Code != "reach_below_full" {
		t.Fatalf("expected reach advisory, got %#v", advs)
	}
	if !strings.Contains(advs[0].Message, "75%") {
		t.Fatalf("reach advisory should name the current reach: %q", advs[0].Message)
	}

	input = validInput()
	input.BaseRate = 0.09
	advs = Advisories(input)
	if len(advs) != 1 || advs[0].Code != "rate_above_benchmarks" {
		t.Fatalf("expected high-rate advisory, got %#v", advs)
	}

	input.BaseRate = 0.005
	advs = Advisories(input)
	if len(advs) != 1 || advs[0].Code != "rate_below_benchmarks" {
		t.Fatalf("expected low-rate advisory, got %#v", advs)
	}
}
