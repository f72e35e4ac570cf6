package news

import (
	"reflect"
	"testing"
)

func TestExtractSymbolsTickerPattern(t *testing.T) {
	got := ExtractSymbols("Shares of 2222.SR closed higher while 1120.SR was flat")
	want := []string{"1120.SR", "2222.SR"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractSymbolsCompanyAlias(t *testing.T) {
	got := ExtractSymbols("Aramco announces record quarterly dividend")
	want := []string{"2222.SR"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractSymbolsAliasCaseInsensitive(t *testing.T) {
	got := ExtractSymbols("SABIC and ALMARAI report results")
	want := []string{"2010.SR", "2280.SR"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractSymbolsDedupesTickerAndAlias(t *testing.T) {
	// A ticker and its company alias in the same text yield one entry.
	got := ExtractSymbols("Saudi Aramco (2222.SR) raises output")
	want := []string{"2222.SR"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractSymbolsNoMatch(t *testing.T) {
	got := ExtractSymbols("The weather in Riyadh was pleasant today")

	if got == nil {
		t.Errorf("Expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("Expected no symbols, got %v", got)
	}
}
