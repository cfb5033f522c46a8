package repoargs

// BankOrderLineBatchQueryRow вызывается для каждой строки батч вставки строк заказа. i индекс строки в
// исходном срезе, id присвоенный базой идентификатор.
type BankOrderLineBatchQueryRow func(i int, id int64, err error)

// BankOrderLineBatchExec вызывается для каждого запроса батч обновления строк заказа.
type BankOrderLineBatchExec func(i int, err error)
