package service

import "testing"

func TestSummarizeBasket(t *testing.T) {
	summary := summarizeBasket(3, Pricing{AnalysePlusRate: 50.0, TaxRate: 0.19})

	if summary.NumberOfItems != 3 {
		t.Errorf("items = %d, want 3", summary.NumberOfItems)
	}
	if summary.CostPerItem != 50.0 {
		t.Errorf("cost per item = %v, want 50", summary.CostPerItem)
	}
	if summary.SumOfItems != 150.0 {
		t.Errorf("sum = %v, want 150", summary.SumOfItems)
	}
	if summary.TaxInPercent != 19 {
		t.Errorf("tax percent = %d, want 19", summary.TaxInPercent)
	}
	if summary.TaxAmount != 28.5 {
		t.Errorf("tax amount = %v, want 28.5", summary.TaxAmount)
	}
	if summary.Subtotal != 178.5 {
		t.Errorf("subtotal = %v, want 178.5", summary.Subtotal)
	}
}

func TestSummarizeBasketRoundsToCents(t *testing.T) {
	summary := summarizeBasket(1, Pricing{AnalysePlusRate: 33.333, TaxRate: 0.19})

	if summary.SumOfItems != 33.33 {
		t.Errorf("sum = %v, want 33.33", summary.SumOfItems)
	}
	if summary.TaxAmount != 6.33 {
		t.Errorf("tax amount = %v, want 6.33", summary.TaxAmount)
	}
}
