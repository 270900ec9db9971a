package matcher

import (
	"testing"

	"github.com/relyk/tomatobot/internal/domain"
)

func referenceTanks() []domain.Tank {
	return []domain.Tank{
		{ID: 1, Name: "Obj. 140"},
		{ID: 2, Name: "Obj. 430U"},
		{ID: 3, Name: "T-34-85M"},
		{ID: 4, Name: "Skoda T 56"},
		{ID: 5, Name: "Leopard 1"},
	}
}

func TestBestTankAbbreviatedQuery(t *testing.T) {
	tank, score := BestTank("obj 140", referenceTanks())
	if tank == nil || tank.Name != "Obj. 140" {
		t.Fatalf("matched %+v (score %d), want Obj. 140", tank, score)
	}
}

func TestBestTankExactNameWins(t *testing.T) {
	tank, score := BestTank("leopard 1", referenceTanks())
	if tank == nil || tank.ID != 5 || score != 100 {
		t.Fatalf("matched %+v (score %d), want exact Leopard 1", tank, score)
	}
}

func TestBestTankPunctuationInsensitive(t *testing.T) {
	tank, _ := BestTank("t3485m", referenceTanks())
	if tank == nil || tank.ID != 3 {
		t.Fatalf("matched %+v, want T-34-85M", tank)
	}
}

func TestBestTankEmptyReference(t *testing.T) {
	tank, _ := BestTank("obj 140", nil)
	if tank != nil {
		t.Fatalf("empty reference must yield nil, got %+v", tank)
	}
}

func TestBestTankStableOnTies(t *testing.T) {
	tanks := []domain.Tank{
		{ID: 10, Name: "AMX 13 90"},
		{ID: 11, Name: "AMX 13 90"},
	}
	tank, _ := BestTank("amx 13 90", tanks)
	if tank == nil || tank.ID != 10 {
		t.Fatalf("ties must keep the earliest row, got %+v", tank)
	}
}
