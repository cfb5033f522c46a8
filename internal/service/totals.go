package service

import (
	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotal сумма BankOrderAmount по строкам. Строки без суммы считаются нулем.
func ComputeTotal(order *domain.BankOrder) decimal.Decimal {
	total := decimal.Zero
	for _, line := range order.Lines {
		if line.BankOrderAmount.Valid {
			total = total.Add(line.BankOrderAmount.Decimal)
		}
	}
	return total
}

// ComputeCompanyCurrencyTotal сумма CompanyCurrencyAmount по строкам.
func ComputeCompanyCurrencyTotal(order *domain.BankOrder) decimal.Decimal {
	total := decimal.Zero
	for _, line := range order.Lines {
		if line.CompanyCurrencyAmount.Valid {
			total = total.Add(line.CompanyCurrencyAmount.Decimal)
		}
	}
	return total
}

// UpdateTotals пересчитывает итоги заказа. Для заказа в одной валюте BankOrderTotalAmount равен
// ArithmeticTotal, для мультивалютного не меняется.
func UpdateTotals(order *domain.BankOrder) {
	order.ArithmeticTotal = ComputeTotal(order)
	order.CompanyCurrencyTotalAmount = ComputeCompanyCurrencyTotal(order)
	if !order.IsMultiCurrency {
		order.BankOrderTotalAmount = order.ArithmeticTotal
	}
}
