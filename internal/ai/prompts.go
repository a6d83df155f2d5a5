package ai

import (
	"encoding/json"
	"fmt"

	"expense-tracko-api/internal/ledger"
)

func summaryPrompt(data ledger.SnapshotData) string {
	totals, _ := json.Marshal(data.CategoryTotals)
	return fmt.Sprintf(`You are a smart personal finance assistant. You have the following user data:

Total Income: ₹%s
Total Expense: ₹%s
Remaining Balance: ₹%s
Category-wise expenses: %s

Generate a monthly summary in simple words that includes:
1. One-line financial health overview
2. Two practical money-saving tips
3. One warning if any category spending is high
4. Keep it simple, concise, and friendly for the user
`, amount(data.TotalIncome), amount(data.TotalExpense), amount(data.Remaining), totals)
}

func chatPrompt(message string, profile ledger.FinanceProfile) string {
	totals, _ := json.Marshal(profile.CategoryTotals)
	return fmt.Sprintf(`You are a personal finance assistant.

User Data:
- Total Income: ₹%s
- Total Expense: ₹%s
- Remaining Balance: ₹%s
- Category-wise expenses: %s

Rules:
1. Only answer questions about the user's personal income, expenses, remaining balance, savings, or financial health.
2. If the question is unrelated (e.g., sports, politics), politely respond: "I'm sorry, I can only answer questions about your personal finances."
3. Provide actionable tips, warnings, or insights strictly based on the user's own data.
4. Keep answers clear, concise, and friendly in 2 or 3 lines.

User Question: %q
`, amount(profile.TotalIncome), amount(profile.TotalExpense), amount(profile.Remaining), totals, message)
}

func amount(v float64) string {
	return fmt.Sprintf("%g", v)
}
