package domain

// ChartData is the input of the stock and sales charts.
//
// Stock and Sales are aligned by index with Labels.
type ChartData struct {
	Labels []string
	Stock  []int
	Sales  []int
}

func NewChartData(ps []Product) ChartData {
	d := ChartData{
		Labels: make([]string, len(ps)),
		Stock:  make([]int, len(ps)),
		Sales:  make([]int, len(ps)),
	}
	for i, p := range ps {
		d.Labels[i] = p.Name
		d.Stock[i] = p.Stock
		d.Sales[i] = p.Sales
	}
	return d
}
