package sqlinline

const QInsertProposal = `--sql b5d1b893-88ff-4726-9568-e9f6fa335da4
insert into proposals(id, reference, locale, input, quote, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::jsonb, $4::jsonb, now())
returning id, created_at;
`

const QSelectProposalByID = `--sql caab3650-cabf-413c-afd7-59844272e39e
select id, reference, locale, input, quote, created_at
from proposals
where id = $1::uuid;
`

const QListProposals = `--sql 0cf523df-2cc1-44b8-aa82-07bf738e8ee0
select id, reference, locale, input, quote, created_at
from proposals
order by created_at desc
limit $1::int;
`
