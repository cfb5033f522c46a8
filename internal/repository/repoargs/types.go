package repoargs

type RepositoryName string

const (
	BankOrderRepoName      RepositoryName = "bank_order"
	InvoicePaymentRepoName RepositoryName = "invoice_payment"
)
